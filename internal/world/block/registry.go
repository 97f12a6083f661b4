package block

import "sync"

var (
	registry   = make(map[Kind]Behavior)
	registryMu sync.RWMutex
)

// Register добавляет поведение блока в регистр
func Register(behavior Behavior) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[behavior.Kind()] = behavior
}

// Get возвращает поведение для указанного вида
func Get(kind Kind) (Behavior, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	behavior, exists := registry[kind]
	return behavior, exists
}

// IsRegistered проверяет, зарегистрировано ли поведение вида
func IsRegistered(kind Kind) bool {
	_, exists := Get(kind)
	return exists
}

// Kind представляет вид блока
type Kind uint16

const (
	Tree Kind = iota + 1
	GrassTuft
	Stones
	Rock
	IronOre
	GoldOre
	CoalOre
	Sticks
)

// String возвращает имя вида из регистра
func (k Kind) String() string {
	if b, ok := Get(k); ok {
		return b.Name()
	}
	return "unknown"
}
