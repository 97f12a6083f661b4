package game

import (
	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/vec"
)

// CommandKind - вид пользовательской команды
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdTurn
	CmdInteract
	CmdNextItem
	CmdEquip
	CmdCraft
	CmdQuit
)

// Command - ввод пользователя, доставляемый в игровой цикл через канал
type Command struct {
	Kind  CommandKind
	Dir   vec.Direction
	Item  item.Kind
	Index int
}

func Move(dir vec.Direction) Command { return Command{Kind: CmdMove, Dir: dir} }
func Turn(dir vec.Direction) Command { return Command{Kind: CmdTurn, Dir: dir} }
func Interact() Command              { return Command{Kind: CmdInteract} }
func NextItem() Command              { return Command{Kind: CmdNextItem} }
func Equip(i int) Command            { return Command{Kind: CmdEquip, Index: i} }
func Craft(kind item.Kind) Command   { return Command{Kind: CmdCraft, Item: kind} }
func Quit() Command                  { return Command{Kind: CmdQuit} }

// Event - сообщение для интерфейса; текст по коду подбирает интерфейс
type Event struct {
	Tick   uint64
	Code   string
	Detail string
}
