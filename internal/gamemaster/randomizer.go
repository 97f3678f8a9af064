package gamemaster

// RandSource is an injected entropy source. The engine takes two, one for
// piece generation and one for garbage holes, so hosts control both.
type RandSource func() uint64

// bag is a 7-bag randomizer: every run of seven pieces contains each kind once.
type bag struct {
	rand    RandSource
	pending []Kind
}

func newBag(r RandSource) *bag {
	return &bag{rand: r}
}

func (b *bag) next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

// refill shuffles a fresh set of kinds with Fisher-Yates.
func (b *bag) refill() {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	for i := len(kinds) - 1; i > 0; i-- {
		j := int(b.rand() % uint64(i+1))
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
	b.pending = kinds
}
