package registration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/auth"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/registration"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/infrastructure/memory"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Banc d'essai: workflow complet sur stores en mémoire, avec un contexte de
// session réel et le cas d'usage auth réel (bcrypt compris).
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	identities *memory.IdentityStore
	suppliers  *memory.SupplierStore
	pharmacies *memory.PharmacyStore
	documents  *memory.DocumentStore
	sess       *session.Context
	auth       *auth.UseCase
}

func newTestEnv() *testEnv {
	identities := memory.NewIdentityStore()
	suppliers := memory.NewSupplierStore()
	pharmacies := memory.NewPharmacyStore()
	documents := memory.NewDocumentStore()
	resolver := session.NewResolver(suppliers, pharmacies, memory.NewAdminStore())
	return &testEnv{
		identities: identities,
		suppliers:  suppliers,
		pharmacies: pharmacies,
		documents:  documents,
		sess:       session.NewContext(resolver),
		auth: auth.NewUseCase(identities, auth.JWTConfig{
			Secret: "secret-de-test", ExpMinutes: 60, Issuer: "dawalink-test",
		}),
	}
}

func (e *testEnv) workflow(t *testing.T, mode string) *registration.Workflow {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return registration.New(
		registration.NewIdentityService(e.auth, e.sess),
		registration.NewProfileStore(e.suppliers, e.pharmacies),
		e.documents,
		log,
		mode,
	)
}

func supplierForm() registration.Form {
	return registration.Form{
		Role:           entity.KindSupplier,
		CompanyName:    "Saidal Distribution",
		RegistryNumber: "RC-16-001234",
		Email:          "contact@saidal-dist.dz",
		Phone:          "0550123456",
		Address:        "Zone industrielle, Rouiba, Alger",
		Password:       "motdepasse",
	}
}

func pharmacyForm() registration.Form {
	return registration.Form{
		Role:          entity.KindPharmacy,
		PharmacyName:  "Pharmacie Centrale",
		LicenseNumber: "LIC-31-000777",
		Email:         "pharmacie.centrale@gmail.com",
		Phone:         "0661987654",
		Address:       "12 rue Larbi Ben M'hidi, Oran",
		Password:      "secret123",
	}
}

func uploadAll(t *testing.T, wf *registration.Workflow) {
	t.Helper()
	for _, docType := range wf.Draft().Required() {
		require.NoError(t, wf.Upload(docType, docType+".pdf"))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Étape formulaire
// ──────────────────────────────────────────────────────────────────────────────

// Mot de passe trop court: l'erreur de longueur prime, même si d'autres
// champs sont aussi invalides.
func TestSubmitForm_MotDePasseTropCourt(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)

	form := supplierForm()
	form.Password = "abc12"
	form.Email = "" // également invalide, mais le mot de passe prime

	err := wf.SubmitForm(context.Background(), form)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, registration.MsgPasswordTooShort, wf.Err())
	assert.Equal(t, registration.StateForm, wf.State(), "l'état ne doit pas avancer")
}

func TestSubmitForm_ChampsObligatoiresManquants(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)

	form := supplierForm()
	form.RegistryNumber = ""

	err := wf.SubmitForm(context.Background(), form)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, registration.MsgRequiredFields, wf.Err())
}

// Un formulaire valide en mode inscription fait transiter vers l'étape
// documents, sans aucun appel réseau ni persistance.
func TestSubmitForm_InscriptionValide_VersDocuments(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)

	require.NoError(t, wf.SubmitForm(context.Background(), supplierForm()))
	assert.Equal(t, registration.StateDocuments, wf.State())
	assert.Empty(t, wf.Err())

	// Rien n'a été créé avant la soumission finale.
	identity, err := env.identities.GetByEmail("contact@saidal-dist.dz")
	require.NoError(t, err)
	assert.Nil(t, identity, "aucune identité ne doit exister avant la soumission des pièces")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mode connexion: contournement du parcours de pièces
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitForm_Connexion_SortieDirecteTableauDeBord(t *testing.T) {
	env := newTestEnv()

	// Compte existant, profil fournisseur déjà en place.
	identity, err := env.auth.SignUp("fournisseur@dz.com", "motdepasse")
	require.NoError(t, err)
	require.NoError(t, env.suppliers.Create(&entity.Supplier{
		ID: identity.ID, CompanyName: "Biopharm", RegistryNumber: "RC-16-9",
	}))

	wf := env.workflow(t, registration.ModeSignIn)
	err = wf.SubmitForm(context.Background(), registration.Form{
		Email: "fournisseur@dz.com", Password: "motdepasse",
	})
	require.NoError(t, err)
	assert.Equal(t, registration.StateDashboard, wf.State(),
		"la connexion ne repasse jamais par l'étape des pièces")

	snap := env.sess.Snapshot()
	assert.Equal(t, session.RouteSupplierDashboard, session.RouteFor(snap))
}

func TestSubmitForm_Connexion_MauvaisIdentifiants(t *testing.T) {
	env := newTestEnv()
	_, err := env.auth.SignUp("compte@dz.com", "motdepasse")
	require.NoError(t, err)

	wf := env.workflow(t, registration.ModeSignIn)
	err = wf.SubmitForm(context.Background(), registration.Form{
		Email: "compte@dz.com", Password: "mauvais-mdp",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, registration.MsgBadCredentials, wf.Err())
	assert.Equal(t, registration.StateForm, wf.State())
}

// Email inconnu et mot de passe erroné produisent le même message, sans
// distinction observable.
func TestSubmitForm_Connexion_EmailInconnuMemeMessage(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignIn)

	err := wf.SubmitForm(context.Background(), registration.Form{
		Email: "inconnu@dz.com", Password: "motdepasse",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, registration.MsgBadCredentials, wf.Err())
}

// ──────────────────────────────────────────────────────────────────────────────
// Étape documents: garde de soumission
// ──────────────────────────────────────────────────────────────────────────────

func TestCanSubmit_VraiSeulementQuandToutEstDepose(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), pharmacyForm()))

	required := wf.Draft().Required()
	require.Len(t, required, 3, "une pharmacie doit fournir trois pièces")

	for i, docType := range required {
		assert.False(t, wf.CanSubmit(), "garde fermée à %d pièce(s) sur %d", i, len(required))
		require.NoError(t, wf.Upload(docType, "scan.pdf"))
	}
	assert.True(t, wf.CanSubmit(), "garde ouverte une fois les trois pièces déposées")

	// Retirer une pièce referme la garde.
	require.NoError(t, wf.RemoveUpload(required[0]))
	assert.False(t, wf.CanSubmit())
}

func TestUpload_LibelleHorsEnsembleRefuse(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), supplierForm()))

	err := wf.Upload("Attestation fiscale", "attestation.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, wf.Draft().Count())
}

// Re-déposer une pièce déjà marquée ne crée pas de doublon.
func TestUpload_Idempotent(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), supplierForm()))

	require.NoError(t, wf.Upload("Pièce d'identité", "v1.pdf"))
	require.NoError(t, wf.Upload("Pièce d'identité", "v2.pdf"))
	assert.Equal(t, 1, wf.Draft().Count())
}

func TestSubmitDocuments_IncompletRefuse(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), supplierForm()))
	require.NoError(t, wf.Upload("Registre de commerce", "rc.pdf"))

	err := wf.SubmitDocuments(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, registration.MsgDocumentsIncomplete, wf.Err())
	assert.Equal(t, registration.StateDocuments, wf.State())

	identity, err := env.identities.GetByEmail("contact@saidal-dist.dz")
	require.NoError(t, err)
	assert.Nil(t, identity, "aucune identité ne doit être créée sur une soumission incomplète")
}

// ──────────────────────────────────────────────────────────────────────────────
// Soumission finale: le scénario nominal de bout en bout
// ──────────────────────────────────────────────────────────────────────────────

// La Pharmacie Centrale s'inscrit, dépose ses trois pièces et soumet. Elle
// sort en attente de revue, son profil et ses trois lignes documents
// existent, et son tableau de bord lui est déjà accessible bien que
// is_verified soit à false.
func TestSubmitDocuments_ParcoursNominalPharmacie(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)

	require.NoError(t, wf.SubmitForm(context.Background(), pharmacyForm()))
	uploadAll(t, wf)
	require.NoError(t, wf.SubmitDocuments(context.Background()))
	assert.Equal(t, registration.StatePending, wf.State())
	assert.Empty(t, wf.Err())

	// Identité + profil créés, session établie.
	snap := env.sess.Snapshot()
	require.True(t, snap.Authenticated)
	pharmacy, err := env.pharmacies.GetByID(snap.Identity.ID)
	require.NoError(t, err)
	require.NotNil(t, pharmacy)
	assert.Equal(t, "Pharmacie Centrale", pharmacy.PharmacyName)
	assert.False(t, pharmacy.IsVerified, "le profil naît non vérifié")

	// Trois lignes documents, toutes pending, au nom du compte.
	docs, err := env.documents.ListByUser(snap.Identity.ID)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for _, d := range docs {
		assert.Equal(t, entity.DocumentPending, d.Status)
		assert.Nil(t, d.ReviewedAt)
	}

	// Sortie pending → tableau de bord, inconditionnelle.
	require.NoError(t, wf.AccessDashboard())
	assert.Equal(t, registration.StateDashboard, wf.State())
}

func TestSubmitDocuments_EmailDejaUtilise(t *testing.T) {
	env := newTestEnv()
	_, err := env.auth.SignUp("pharmacie.centrale@gmail.com", "autremdp")
	require.NoError(t, err)

	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), pharmacyForm()))
	uploadAll(t, wf)

	err = wf.SubmitDocuments(context.Background())
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, registration.MsgEmailTaken, wf.Err())
	assert.Equal(t, registration.StateDocuments, wf.State(), "retour à l'étape documents")
}

func TestSubmitDocuments_NumeroDejaUtilise(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.pharmacies.Create(&entity.Pharmacy{
		ID: "autre-compte", PharmacyName: "Autre Officine", LicenseNumber: "LIC-31-000777",
	}))

	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), pharmacyForm()))
	uploadAll(t, wf)

	err := wf.SubmitDocuments(context.Background())
	require.ErrorIs(t, err, domain.ErrLicenseNumberExists)
	assert.Equal(t, registration.MsgNumberTaken, wf.Err())
}

// Échec de la promotion du lot: aucune pièce persistée, message générique,
// le profil déjà inséré est conservé.
func TestSubmitDocuments_EchecDuLot_AucunePiecePersistee(t *testing.T) {
	env := newTestEnv()
	env.documents.FailNextBatch(errors.New("insertion refusée"))

	wf := env.workflow(t, registration.ModeSignUp)
	require.NoError(t, wf.SubmitForm(context.Background(), supplierForm()))
	uploadAll(t, wf)

	err := wf.SubmitDocuments(context.Background())
	require.Error(t, err)
	assert.Equal(t, registration.MsgGeneric, wf.Err())
	assert.Equal(t, registration.StateDocuments, wf.State())

	snap := env.sess.Snapshot()
	require.True(t, snap.Authenticated)
	docs, err := env.documents.ListByUser(snap.Identity.ID)
	require.NoError(t, err)
	assert.Empty(t, docs, "tout ou rien: aucune pièce ne doit exister après l'échec du lot")

	// Le profil inséré avant le lot reste en place.
	supplier, err := env.suppliers.GetByID(snap.Identity.ID)
	require.NoError(t, err)
	assert.NotNil(t, supplier)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transitions illégales
// ──────────────────────────────────────────────────────────────────────────────

func TestTransitionsIllegales(t *testing.T) {
	env := newTestEnv()
	wf := env.workflow(t, registration.ModeSignUp)

	// Depuis form, rien d'autre que SubmitForm n'est permis.
	assert.ErrorIs(t, wf.Upload("Pièce d'identité", "f.pdf"), domain.ErrConflict)
	assert.ErrorIs(t, wf.SubmitDocuments(context.Background()), domain.ErrConflict)
	assert.ErrorIs(t, wf.AccessDashboard(), domain.ErrConflict)

	// Depuis documents, re-soumettre le formulaire est refusé.
	require.NoError(t, wf.SubmitForm(context.Background(), supplierForm()))
	assert.ErrorIs(t, wf.SubmitForm(context.Background(), supplierForm()), domain.ErrConflict)
}
