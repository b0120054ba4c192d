package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/jwt"
)

// JWTConfig configuration pour la génération des jetons.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase collaborateur Identity: création de compte, connexion, relecture.
// Ne connaît rien des profils métier; le workflow d'inscription et le
// résolveur de session orchestrent autour.
type UseCase struct {
	identities repository.IdentityRepository
	jwtCfg     JWTConfig
}

// NewUseCase construit le cas d'usage d'authentification.
func NewUseCase(identities repository.IdentityRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{identities: identities, jwtCfg: jwtCfg}
}

// SignUp crée un enregistrement d'identité: hash bcrypt puis insertion.
// Renvoie ErrEmailAlreadyExists si l'email est déjà pris.
func (uc *UseCase) SignUp(email, password string) (*entity.Identity, error) {
	existing, err := uc.identities.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	identity := &entity.Identity{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.identities.Create(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// SignIn vérifie email/mot de passe. Email inconnu et mot de passe erroné
// renvoient le même ErrInvalidCredentials, sans distinction.
func (uc *UseCase) SignIn(email, password string) (*entity.Identity, error) {
	identity, err := uc.identities.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}

// CurrentUser relit une identité par id (reprise de session).
func (uc *UseCase) CurrentUser(id string) (*entity.Identity, error) {
	identity, err := uc.identities.GetByID(id)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrNotFound
	}
	return identity, nil
}

// Token émet le jeton de session pour une identité et son profil résolu.
func (uc *UseCase) Token(identity *entity.Identity, kind entity.ProfileKind, verified bool) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, identity.ID, string(kind), verified, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
