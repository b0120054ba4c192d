package session

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// Route écran de premier niveau à monter pour une session donnée.
type Route string

// Écrans possibles.
const (
	RouteLanding           Route = "landing"
	RouteRegistration      Route = "registration"
	RouteSupplierDashboard Route = "supplier_dashboard"
	RoutePharmacyDashboard Route = "pharmacy_dashboard"
	RouteAdminConsole      Route = "admin_console"
)

// RouteFor sélectionne exactement un écran à partir de l'état de session.
// Fonction pure: non authentifié → landing; authentifié sans profil →
// parcours d'inscription; sinon le tableau de bord du rôle. is_verified
// n'est volontairement pas consulté: un profil en attente de revue accède
// déjà à son tableau de bord.
func RouteFor(s Snapshot) Route {
	if !s.Authenticated {
		return RouteLanding
	}
	switch s.Profile.Kind {
	case entity.KindSupplier:
		return RouteSupplierDashboard
	case entity.KindPharmacy:
		return RoutePharmacyDashboard
	case entity.KindAdmin:
		return RouteAdminConsole
	default:
		return RouteRegistration
	}
}
