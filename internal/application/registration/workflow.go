package registration

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/logger"
)

// State état du workflow d'inscription.
type State string

// États. StateDashboard est la sortie vers le routeur de rôles.
const (
	StateForm      State = "form"
	StateDocuments State = "documents"
	StatePending   State = "pending"
	StateDashboard State = "dashboard"
)

// Mode mode du formulaire initial.
const (
	ModeSignUp = "signup"
	ModeSignIn = "signin"
)

// Form champs collectés à l'étape form. Les champs fournisseur et pharmacie
// sont mutuellement exclusifs selon Role.
type Form struct {
	Role entity.ProfileKind

	CompanyName    string
	RegistryNumber string

	PharmacyName  string
	LicenseNumber string

	Email    string
	Phone    string
	Address  string
	Password string
}

// Workflow machine à états du parcours d'inscription/vérification:
// form → documents → pending, ou sortie directe vers le tableau de bord en
// mode signin. Un seul acteur logique par instance; les étapes sont des
// allers-retours réseau séquentiels, sans retry automatique. Aucune
// défaillance ne traverse la frontière du workflow: tout est converti en un
// unique message d'erreur lu par l'écran courant.
type Workflow struct {
	identity  IdentityService
	profiles  ProfileStore
	documents DocumentStore
	log       *logger.Logger

	mode   string
	state  State
	form   Form
	draft  *Draft
	errMsg string
}

// New construit un workflow en état form.
func New(identity IdentityService, profiles ProfileStore, documents DocumentStore, log *logger.Logger, mode string) *Workflow {
	return &Workflow{
		identity:  identity,
		profiles:  profiles,
		documents: documents,
		log:       log,
		mode:      mode,
		state:     StateForm,
	}
}

// State état courant.
func (w *Workflow) State() State { return w.state }

// Err message d'erreur utilisateur de la dernière opération, "" si aucune.
func (w *Workflow) Err() string { return w.errMsg }

// Draft brouillon de pièces, nil avant l'étape documents.
func (w *Workflow) Draft() *Draft { return w.draft }

// SubmitForm valide le formulaire localement (aucun appel réseau en cas
// d'échec, aucune persistance partielle). En mode signup la transition va
// vers documents; en mode signin les identifiants sont vérifiés et la
// sortie est directe vers le tableau de bord.
func (w *Workflow) SubmitForm(ctx context.Context, form Form) error {
	if w.state != StateForm {
		return domain.ErrConflict
	}
	if msg := w.validate(form); msg != "" {
		w.errMsg = msg
		return domain.ErrInvalidInput
	}
	w.form = form

	if w.mode == ModeSignIn {
		if _, err := w.identity.SignIn(ctx, form.Email, form.Password); err != nil {
			w.errMsg = MsgBadCredentials
			return err
		}
		w.errMsg = ""
		w.state = StateDashboard
		return nil
	}

	w.errMsg = ""
	w.draft = NewDraft(form.Role)
	w.state = StateDocuments
	return nil
}

// validate renvoie le message d'erreur local, "" si le formulaire passe.
// La longueur du mot de passe prime sur les champs manquants.
func (w *Workflow) validate(form Form) string {
	if len(form.Password) < 6 {
		return MsgPasswordTooShort
	}
	if w.mode == ModeSignIn {
		if form.Email == "" {
			return MsgRequiredFields
		}
		return ""
	}
	if form.Email == "" || form.Phone == "" || form.Address == "" {
		return MsgRequiredFields
	}
	switch form.Role {
	case entity.KindSupplier:
		if form.CompanyName == "" || form.RegistryNumber == "" {
			return MsgRequiredFields
		}
	case entity.KindPharmacy:
		if form.PharmacyName == "" || form.LicenseNumber == "" {
			return MsgRequiredFields
		}
	default:
		return MsgRequiredFields
	}
	return ""
}

// Upload marque une pièce comme déposée (étape documents). Idempotent pour
// un libellé déjà marqué. Libellé hors de l'ensemble exigé: refusé.
func (w *Workflow) Upload(docType, fileName string) error {
	if w.state != StateDocuments {
		return domain.ErrConflict
	}
	if !w.draft.Mark(docType, fileName) {
		return domain.ErrInvalidInput
	}
	return nil
}

// RemoveUpload retire une pièce du brouillon.
func (w *Workflow) RemoveUpload(docType string) error {
	if w.state != StateDocuments {
		return domain.ErrConflict
	}
	w.draft.Unmark(docType)
	return nil
}

// CanSubmit garde du bouton de soumission: vrai ssi chaque pièce exigée est
// déposée. Tant que la garde échoue le contrôle reste désactivé.
func (w *Workflow) CanSubmit() bool {
	return w.state == StateDocuments && w.draft.Complete()
}

// SubmitDocuments exécute la transaction logique d'enrôlement:
// (a) création de l'identité, (b) insertion du profil, (c) relecture de
// l'utilisateur authentifié puis promotion du brouillon en lignes documents
// (lot atomique), (d) transition vers pending. Un échec en (a) ou (b)
// ramène à documents avec le message correspondant; un échec du lot (c)
// ramène aussi à documents — aucune pièce n'est persistée dans ce cas.
func (w *Workflow) SubmitDocuments(ctx context.Context) error {
	if w.state != StateDocuments {
		return domain.ErrConflict
	}
	if !w.draft.Complete() {
		w.errMsg = MsgDocumentsIncomplete
		return domain.ErrInvalidInput
	}

	identity, err := w.identity.SignUp(ctx, w.form.Email, w.form.Password)
	if err != nil {
		w.errMsg = UserMessage(err)
		return err
	}

	if err := w.profiles.Create(ctx, w.buildProfile(identity.ID)); err != nil {
		w.errMsg = UserMessage(err)
		return err
	}

	current, err := w.identity.CurrentUser(ctx)
	if err != nil {
		w.errMsg = MsgGeneric
		return err
	}

	docs := w.draft.Promote(current.ID, time.Now())
	if err := w.documents.CreateBatch(ctx, docs); err != nil {
		w.log.Error().Err(err).Str("user_id", current.ID).Msg("promotion des documents échouée")
		w.errMsg = MsgGeneric
		return err
	}

	w.log.Info().
		Str("user_id", current.ID).
		Str("role", string(w.form.Role)).
		Int("documents", len(docs)).
		Msg("inscription soumise, en attente de revue")

	w.errMsg = ""
	w.state = StatePending
	return nil
}

// AccessDashboard sortie pending → tableau de bord. Inconditionnelle: le
// statut de vérification n'est pas re-contrôlé avant d'accorder la sortie.
func (w *Workflow) AccessDashboard() error {
	if w.state != StatePending {
		return domain.ErrConflict
	}
	w.state = StateDashboard
	return nil
}

// buildProfile matérialise le formulaire en union taguée, id = identité.
func (w *Workflow) buildProfile(identityID string) entity.Profile {
	now := time.Now()
	switch w.form.Role {
	case entity.KindPharmacy:
		return entity.ForPharmacy(&entity.Pharmacy{
			ID:            identityID,
			PharmacyName:  w.form.PharmacyName,
			LicenseNumber: w.form.LicenseNumber,
			Phone:         w.form.Phone,
			Address:       w.form.Address,
			Email:         w.form.Email,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	default:
		return entity.ForSupplier(&entity.Supplier{
			ID:             identityID,
			CompanyName:    w.form.CompanyName,
			RegistryNumber: w.form.RegistryNumber,
			Phone:          w.form.Phone,
			Address:        w.form.Address,
			Email:          w.form.Email,
			AverageRating:  decimal.Zero,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
}
