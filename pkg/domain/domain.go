package domain

// Key identifies one of the six curriculum domains. Keys are the only stable
// identifier for a domain: display prose may be reworded, keys never change.
type Key string

const (
	KeyAwareness  Key = "awareness"
	KeyCoAgency   Key = "coagency"
	KeyPractice   Key = "practice"
	KeyEthics     Key = "ethics"
	KeyGovernance Key = "governance"
	KeyReflection Key = "reflection"
)

// Keys returns the six canonical domain keys in registry order.
// Display and report ordering always follow this order.
func Keys() []Key {
	return []Key{
		KeyAwareness,
		KeyCoAgency,
		KeyPractice,
		KeyEthics,
		KeyGovernance,
		KeyReflection,
	}
}

// ValidKey reports whether k is one of the six canonical keys.
func ValidKey(k Key) bool {
	switch k {
	case KeyAwareness, KeyCoAgency, KeyPractice, KeyEthics, KeyGovernance, KeyReflection:
		return true
	}
	return false
}

// Domain is one of the six fixed lenses items are tagged against.
// The key set and order are invariant; the prose is configuration data
// supplied by the content pack.
type Domain struct {
	Key    Key    `yaml:"key" json:"key"`
	Name   string `yaml:"name" json:"name"`
	Short  string `yaml:"short" json:"short"`
	Prompt string `yaml:"prompt" json:"prompt"`
}

// TagSet maps each canonical domain key to whether an item touches it.
// A well-formed TagSet contains exactly the six canonical keys.
type TagSet map[Key]bool

// NewTagSet returns a TagSet with all six keys present and false.
func NewTagSet() TagSet {
	tags := make(TagSet, 6)
	for _, k := range Keys() {
		tags[k] = false
	}
	return tags
}

// Active returns the keys set to true, in registry order.
func (t TagSet) Active() []Key {
	var active []Key
	for _, k := range Keys() {
		if t[k] {
			active = append(active, k)
		}
	}
	return active
}
