package domain

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator hands out increasing decimal ids starting after Start.
type SequenceGenerator struct {
	last atomic.Int64
}

func NewSequenceGenerator(start int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.last.Store(start)
	return g
}

func (g *SequenceGenerator) NewID() string {
	return strconv.FormatInt(g.last.Add(1), 10)
}
