package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/auth"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/registration"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/infrastructure/memory"
	apphttp "github.com/ZakaryaOukil/Dawalink-sub000/internal/interfaces/http"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parcours d'inscription/connexion de bout en bout, sur stores en mémoire.
// ──────────────────────────────────────────────────────────────────────────────

func buildAuthApp(t *testing.T) (*fiber.App, *memory.DocumentStore) {
	t.Helper()
	identities := memory.NewIdentityStore()
	suppliers := memory.NewSupplierStore()
	pharmacies := memory.NewPharmacyStore()
	documents := memory.NewDocumentStore()
	resolver := session.NewResolver(suppliers, pharmacies, memory.NewAdminStore())
	authUC := auth.NewUseCase(identities, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	h := apphttp.NewAuthHandler(authUC, resolver, suppliers, pharmacies, documents, log)

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Get("/api/session", apphttp.AuthMiddleware(testJWTSecret), h.Session)
	return app, documents
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func pharmacyRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Role:          "pharmacy",
		PharmacyName:  "Pharmacie Centrale",
		LicenseNumber: "LIC-31-000777",
		Email:         "pharmacie.centrale@gmail.com",
		Phone:         "0661987654",
		Address:       "12 rue Larbi Ben M'hidi, Oran",
		Password:      "secret123",
		Documents: []dto.DocumentUpload{
			{DocumentType: "Licence de pharmacie", FileName: "licence.pdf"},
			{DocumentType: "Pièce d'identité", FileName: "cni.pdf"},
			{DocumentType: "Certificat d'inscription", FileName: "certificat.pdf"},
		},
	}
}

func TestRegister_ParcoursComplet(t *testing.T) {
	app, documents := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register", pharmacyRegisterRequest())
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.RegisterResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.UserID)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "pending", out.State, "le compte sort en attente de revue")
	assert.Equal(t, string(session.RoutePharmacyDashboard), out.Route,
		"le tableau de bord est déjà accessible avant la vérification")

	docs, err := documents.ListByUser(out.UserID)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestRegister_MotDePasseTropCourt(t *testing.T) {
	app, _ := buildAuthApp(t)

	in := pharmacyRegisterRequest()
	in.Password = "abc"
	resp := postJSON(t, app, "/api/auth/register", in)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, registration.MsgPasswordTooShort, out.Message)
}

func TestRegister_PiecesManquantes(t *testing.T) {
	app, _ := buildAuthApp(t)

	in := pharmacyRegisterRequest()
	in.Documents = in.Documents[:2]
	resp := postJSON(t, app, "/api/auth/register", in)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, registration.MsgDocumentsIncomplete, out.Message)
}

func TestRegister_EmailDejaUtilise(t *testing.T) {
	app, _ := buildAuthApp(t)

	first := postJSON(t, app, "/api/auth/register", pharmacyRegisterRequest())
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	in := pharmacyRegisterRequest()
	in.LicenseNumber = "LIC-31-000888" // même email, licence différente
	resp := postJSON(t, app, "/api/auth/register", in)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, registration.MsgEmailTaken, out.Message)
}

func TestLogin_PuisSession(t *testing.T) {
	app, _ := buildAuthApp(t)

	created := postJSON(t, app, "/api/auth/register", pharmacyRegisterRequest())
	created.Body.Close()
	require.Equal(t, http.StatusCreated, created.StatusCode)

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Email: "pharmacie.centrale@gmail.com", Password: "secret123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	assert.Equal(t, string(session.RoutePharmacyDashboard), login.Route)
	assert.Equal(t, "pharmacy", login.Profile.Kind)
	assert.False(t, login.Profile.IsVerified, "non vérifié, mais routé vers son tableau de bord")

	// Reprise de session avec le jeton.
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	sessResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer sessResp.Body.Close()
	require.Equal(t, http.StatusOK, sessResp.StatusCode)

	var sess dto.SessionResponse
	require.NoError(t, json.NewDecoder(sessResp.Body).Decode(&sess))
	assert.True(t, sess.Authenticated)
	assert.Equal(t, string(session.RoutePharmacyDashboard), sess.Route)
}

func TestLogin_MauvaisIdentifiants(t *testing.T) {
	app, _ := buildAuthApp(t)

	created := postJSON(t, app, "/api/auth/register", pharmacyRegisterRequest())
	created.Body.Close()

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Email: "pharmacie.centrale@gmail.com", Password: "mauvais-mdp",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, registration.MsgBadCredentials, out.Message)
}
