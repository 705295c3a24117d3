package cascade

import "sync"

// rootLocks serializa las cascadas por id de entidad raíz: dos invocaciones
// sobre la misma raíz se ejecutan una después de la otra (evita que un
// reactivate corra contra un deactivate de la misma categoría); raíces
// distintas avanzan en paralelo.
//
// Los mutex no se eliminan del mapa: el número de raíces tocadas por proceso
// es acotado y un delete requeriría conteo de referencias.
type rootLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRootLocks() *rootLocks {
	return &rootLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire bloquea el lock de la raíz y devuelve la función para liberarlo.
func (r *rootLocks) acquire(rootID string) func() {
	r.mu.Lock()
	l, ok := r.locks[rootID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[rootID] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
