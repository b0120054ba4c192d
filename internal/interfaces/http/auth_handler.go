package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/auth"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/registration"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/logger"
)

// AuthHandler inscription, connexion et reprise de session. L'inscription
// déroule le workflow complet (formulaire → pièces → soumission) dans la
// requête, avec un contexte de session dédié à chaque parcours.
type AuthHandler struct {
	auth       *auth.UseCase
	resolver   *session.Resolver
	suppliers  repository.SupplierRepository
	pharmacies repository.PharmacyRepository
	documents  registration.DocumentStore
	log        *logger.Logger
}

// NewAuthHandler construit le handler d'authentification.
func NewAuthHandler(a *auth.UseCase, resolver *session.Resolver, suppliers repository.SupplierRepository, pharmacies repository.PharmacyRepository, documents registration.DocumentStore, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: a, resolver: resolver, suppliers: suppliers, pharmacies: pharmacies, documents: documents, log: log}
}

// Register POST /api/auth/register — parcours d'inscription complet. Le
// compte créé sort en attente de revue mais reçoit déjà son jeton et sa
// route de tableau de bord.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}

	sess := session.NewContext(h.resolver)
	wf := registration.New(
		registration.NewIdentityService(h.auth, sess),
		registration.NewProfileStore(h.suppliers, h.pharmacies),
		h.documents,
		h.log,
		registration.ModeSignUp,
	)

	form := registration.Form{
		Role:           entity.ProfileKind(in.Role),
		CompanyName:    in.CompanyName,
		RegistryNumber: in.RegistryNumber,
		PharmacyName:   in.PharmacyName,
		LicenseNumber:  in.LicenseNumber,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		Password:       in.Password,
	}
	if err := wf.SubmitForm(c.Context(), form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: wf.Err()})
	}
	for _, d := range in.Documents {
		if err := wf.Upload(d.DocumentType, d.FileName); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pièce inattendue: " + d.DocumentType})
		}
	}
	if !wf.CanSubmit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: registration.MsgDocumentsIncomplete})
	}
	if err := wf.SubmitDocuments(c.Context()); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists),
			errors.Is(err, domain.ErrRegistryNumberExists),
			errors.Is(err, domain.ErrLicenseNumberExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: wf.Err()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: wf.Err()})
		}
	}

	// Re-résolution: le profil vient d'être inséré, la session établie au
	// SignUp ne le connaissait pas encore.
	snap, err := sess.Establish(sess.Snapshot().Identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	token, err := h.auth.Token(snap.Identity, snap.Profile.Kind, snap.Profile.IsVerified())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		UserID: snap.Identity.ID,
		State:  string(wf.State()),
		Route:  string(session.RouteFor(snap)),
		Token:  token,
	})
}

// Login POST /api/auth/login — connexion directe vers le tableau de bord,
// sans repasser par le parcours de pièces.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: registration.MsgPasswordTooShort})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: registration.MsgRequiredFields})
	}

	identity, err := h.auth.SignIn(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: registration.MsgBadCredentials})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	profile, err := h.resolver.Resolve(identity.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	token, err := h.auth.Token(identity, profile.Kind, profile.IsVerified())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	snap := session.Snapshot{Authenticated: true, Identity: identity, Profile: profile}
	return c.JSON(dto.LoginResponse{
		Token:   token,
		Route:   string(session.RouteFor(snap)),
		Profile: dto.ToProfileResponse(profile),
	})
}

// Session GET /api/session — reconstruit l'état de session depuis le jeton:
// relecture de l'identité puis re-résolution du profil (le jeton peut porter
// un kind périmé).
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	identity, err := h.auth.CurrentUser(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "session inconnue"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	profile, err := h.resolver.Resolve(identity.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: registration.MsgGeneric})
	}
	snap := session.Snapshot{Authenticated: true, Identity: identity, Profile: profile}
	return c.JSON(dto.SessionResponse{
		Authenticated: true,
		Route:         string(session.RouteFor(snap)),
		Profile:       dto.ToProfileResponse(profile),
	})
}
