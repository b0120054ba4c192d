package dto

// DocumentUpload marqueur de pièce déposée côté client, promu en ligne
// documents au moment de la soumission finale.
type DocumentUpload struct {
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`
}

// RegisterRequest entrée du parcours d'inscription complet: champs du
// formulaire selon le rôle + marqueurs de pièces déposées.
type RegisterRequest struct {
	Role string `json:"role"` // "supplier" | "pharmacy"

	// Champs fournisseur
	CompanyName    string `json:"company_name"`
	RegistryNumber string `json:"registry_number"`

	// Champs pharmacie
	PharmacyName  string `json:"pharmacy_name"`
	LicenseNumber string `json:"license_number"`

	// Champs communs
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`

	Documents []DocumentUpload `json:"documents"`
}

// RegisterResponse résultat d'une inscription aboutie: le compte est en
// attente de revue mais l'accès au tableau de bord est déjà ouvert.
type RegisterResponse struct {
	UserID string `json:"user_id"`
	State  string `json:"state"` // toujours "pending"
	Route  string `json:"route"`
	Token  string `json:"token"`
}

// LoginRequest entrée de connexion.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse sortie de connexion: jeton + profil résolu + écran cible.
type LoginResponse struct {
	Token   string          `json:"token"`
	Route   string          `json:"route"`
	Profile ProfileResponse `json:"profile"`
}

// SessionResponse état de session reconstruit à chaque reprise.
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Route         string          `json:"route"`
	Profile       ProfileResponse `json:"profile"`
}
