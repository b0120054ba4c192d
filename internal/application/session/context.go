package session

import (
	"sync"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// Snapshot vue immuable de la session: identité + profil résolu. Le drapeau
// de vérification y figure à titre indicatif, jamais comme barrière d'accès.
type Snapshot struct {
	Authenticated bool
	Identity      *entity.Identity
	Profile       entity.Profile
}

// Context état de session explicite et injectable, à la place d'un état
// global ambiant. Cycle de vie: zéro valeur au démarrage, Establish à la
// connexion, Clear à la déconnexion. Les abonnés OnChange sont notifiés à
// chaque transition.
type Context struct {
	resolver *Resolver

	mu   sync.RWMutex
	snap Snapshot
	subs []func(Snapshot)
}

// NewContext construit un contexte de session vide.
func NewContext(resolver *Resolver) *Context {
	return &Context{resolver: resolver, snap: Snapshot{Profile: entity.None()}}
}

// Establish résout le profil de l'identité, met la session en place et
// notifie les abonnés. La session reste établie même sans profil (Kind=none):
// c'est le routeur qui renvoie alors vers le parcours d'inscription.
func (c *Context) Establish(identity *entity.Identity) (Snapshot, error) {
	profile, err := c.resolver.Resolve(identity.ID)
	if err != nil {
		return Snapshot{Profile: entity.None()}, err
	}
	snap := Snapshot{Authenticated: true, Identity: identity, Profile: profile}

	c.mu.Lock()
	c.snap = snap
	subs := append([]func(Snapshot){}, c.subs...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap, nil
}

// Clear vide la session (déconnexion) et notifie les abonnés.
func (c *Context) Clear() {
	snap := Snapshot{Profile: entity.None()}

	c.mu.Lock()
	c.snap = snap
	subs := append([]func(Snapshot){}, c.subs...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// OnChange enregistre un abonné appelé à chaque Establish/Clear.
func (c *Context) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Snapshot renvoie la vue courante de la session.
func (c *Context) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
