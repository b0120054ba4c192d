package entity

// ProfileKind discriminant du profil résolu pour une session.
type ProfileKind string

// Kinds valides.
const (
	KindNone     ProfileKind = "none"
	KindSupplier ProfileKind = "supplier"
	KindPharmacy ProfileKind = "pharmacy"
	KindAdmin    ProfileKind = "admin"
)

// Profile union taguée {Supplier | Pharmacy | Admin}. La persistance reste
// dans des tables séparées mais la résolution produit une seule valeur typée;
// tout consommateur fait un switch exhaustif sur Kind au lieu de sonder
// deux tables à la suite.
type Profile struct {
	Kind     ProfileKind
	Supplier *Supplier
	Pharmacy *Pharmacy
	Admin    *AdminUser
}

// None profil vide (session sans profil métier).
func None() Profile {
	return Profile{Kind: KindNone}
}

// ForSupplier construit l'union pour un fournisseur.
func ForSupplier(s *Supplier) Profile {
	return Profile{Kind: KindSupplier, Supplier: s}
}

// ForPharmacy construit l'union pour une pharmacie.
func ForPharmacy(p *Pharmacy) Profile {
	return Profile{Kind: KindPharmacy, Pharmacy: p}
}

// ForAdmin construit l'union pour un compte admin.
func ForAdmin(a *AdminUser) Profile {
	return Profile{Kind: KindAdmin, Admin: a}
}

// ID identifiant du profil sous-jacent, "" si KindNone.
func (p Profile) ID() string {
	switch p.Kind {
	case KindSupplier:
		return p.Supplier.ID
	case KindPharmacy:
		return p.Pharmacy.ID
	case KindAdmin:
		return p.Admin.ID
	default:
		return ""
	}
}

// IsVerified drapeau de vérification du profil métier. Les admins sont
// toujours considérés vérifiés; KindNone jamais.
func (p Profile) IsVerified() bool {
	switch p.Kind {
	case KindSupplier:
		return p.Supplier.IsVerified
	case KindPharmacy:
		return p.Pharmacy.IsVerified
	case KindAdmin:
		return true
	default:
		return false
	}
}

// DisplayName nom affichable du profil.
func (p Profile) DisplayName() string {
	switch p.Kind {
	case KindSupplier:
		return p.Supplier.CompanyName
	case KindPharmacy:
		return p.Pharmacy.PharmacyName
	case KindAdmin:
		return p.Admin.Email
	default:
		return ""
	}
}
