package review_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/review"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/infrastructure/memory"
)

type reviewEnv struct {
	documents  *memory.DocumentStore
	suppliers  *memory.SupplierStore
	pharmacies *memory.PharmacyStore
	uc         *review.UseCase
}

func newReviewEnv() *reviewEnv {
	documents := memory.NewDocumentStore()
	suppliers := memory.NewSupplierStore()
	pharmacies := memory.NewPharmacyStore()
	resolver := session.NewResolver(suppliers, pharmacies, memory.NewAdminStore())
	return &reviewEnv{
		documents:  documents,
		suppliers:  suppliers,
		pharmacies: pharmacies,
		uc:         review.NewUseCase(documents, suppliers, pharmacies, resolver),
	}
}

func (e *reviewEnv) seedDocument(t *testing.T, id, userID, status string) {
	t.Helper()
	require.NoError(t, e.documents.Create(&entity.Document{
		ID: id, UserID: userID, DocumentType: "Pièce d'identité",
		FileName: "scan.pdf", Status: status, UploadedAt: time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Décisions approve/reject
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_PieceEnAttente(t *testing.T) {
	env := newReviewEnv()
	env.seedDocument(t, "doc-1", "user-1", entity.DocumentPending)
	env.seedDocument(t, "doc-2", "user-1", entity.DocumentPending)

	out, err := env.uc.Approve("doc-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentApproved, out.Document.Status)
	assert.NotNil(t, out.Document.ReviewedAt)
	assert.False(t, out.AllApproved, "il reste une pièce en attente")
}

// Quand la dernière pièce du compte passe en approved, AllApproved est
// signalé — mais ce n'est qu'un signal: is_verified ne bouge pas.
func TestApprove_DernierePiece_SignaleAllApproved(t *testing.T) {
	env := newReviewEnv()
	require.NoError(t, env.suppliers.Create(&entity.Supplier{
		ID: "user-1", CompanyName: "Biopharm", RegistryNumber: "RC-1",
	}))
	env.seedDocument(t, "doc-1", "user-1", entity.DocumentApproved)
	env.seedDocument(t, "doc-2", "user-1", entity.DocumentPending)

	out, err := env.uc.Approve("doc-2")
	require.NoError(t, err)
	assert.True(t, out.AllApproved)

	supplier, err := env.suppliers.GetByID("user-1")
	require.NoError(t, err)
	assert.False(t, supplier.IsVerified,
		"le signal AllApproved ne bascule jamais is_verified automatiquement")
}

func TestReject_PieceEnAttente(t *testing.T) {
	env := newReviewEnv()
	env.seedDocument(t, "doc-1", "user-1", entity.DocumentPending)

	out, err := env.uc.Reject("doc-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentRejected, out.Document.Status)
	assert.False(t, out.AllApproved)
}

// Transitions à sens unique: une pièce déjà revue ne se re-décide pas.
func TestDecision_PieceDejaRevue(t *testing.T) {
	env := newReviewEnv()
	env.seedDocument(t, "doc-1", "user-1", entity.DocumentApproved)
	env.seedDocument(t, "doc-2", "user-1", entity.DocumentRejected)

	_, err := env.uc.Reject("doc-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = env.uc.Approve("doc-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDecision_PieceIntrouvable(t *testing.T) {
	env := newReviewEnv()
	_, err := env.uc.Approve("doc-inexistant")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPending_SeulesLesPiecesEnAttente(t *testing.T) {
	env := newReviewEnv()
	env.seedDocument(t, "doc-1", "user-1", entity.DocumentPending)
	env.seedDocument(t, "doc-2", "user-2", entity.DocumentApproved)
	env.seedDocument(t, "doc-3", "user-3", entity.DocumentPending)

	out, err := env.uc.ListPending(20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.Equal(t, entity.DocumentPending, item.Status)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Bascule de vérification
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyProfile_Fournisseur(t *testing.T) {
	env := newReviewEnv()
	require.NoError(t, env.suppliers.Create(&entity.Supplier{
		ID: "user-1", CompanyName: "Biopharm", RegistryNumber: "RC-1",
	}))

	out, err := env.uc.VerifyProfile("user-1", true)
	require.NoError(t, err)
	assert.True(t, out.IsVerified)

	supplier, err := env.suppliers.GetByID("user-1")
	require.NoError(t, err)
	assert.True(t, supplier.IsVerified)
}

func TestVerifyProfile_Pharmacie(t *testing.T) {
	env := newReviewEnv()
	require.NoError(t, env.pharmacies.Create(&entity.Pharmacy{
		ID: "user-2", PharmacyName: "Pharmacie Centrale", LicenseNumber: "LIC-1",
	}))

	out, err := env.uc.VerifyProfile("user-2", true)
	require.NoError(t, err)
	assert.True(t, out.IsVerified)
	assert.Equal(t, string(entity.KindPharmacy), out.Kind)
}

func TestVerifyProfile_CompteSansProfil(t *testing.T) {
	env := newReviewEnv()
	_, err := env.uc.VerifyProfile("user-inconnu", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export xlsx
// ──────────────────────────────────────────────────────────────────────────────

func TestExportQueue_ClasseurLisible(t *testing.T) {
	env := newReviewEnv()
	env.seedDocument(t, "doc-1", "user-1", entity.DocumentPending)
	env.seedDocument(t, "doc-2", "user-2", entity.DocumentPending)

	data, err := env.uc.ExportQueue()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "le contenu doit être un classeur xlsx valide")
	defer f.Close()

	rows, err := f.GetRows("File de revue")
	require.NoError(t, err)
	require.Len(t, rows, 3, "une ligne d'en-tête + deux pièces")
	assert.Equal(t, "ID", rows[0][0])
}
