package entity

import "github.com/annel0/tilecraft/internal/vec"

// Crawler - базовый враг ближнего боя
type Crawler struct {
	creature
}

// NewCrawler создаёт ползуна в указанной клетке
func NewCrawler(pos vec.Vec2) *Crawler {
	return &Crawler{creature: newCreature(pos, 5, 8, 10, 10, 10, true)}
}

func (c *Crawler) Kind() Kind { return KindCrawler }

func (c *Crawler) OnAction(player Target, world WorldView) Action {
	return c.pursue(player, world)
}
