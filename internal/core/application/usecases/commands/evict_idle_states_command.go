package commands

import (
	"errors"
	"time"

	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var (
	ErrEvictIdleStatesCommandIsNotConstructed = errors.New(
		"EvictIdleStatesCommand must be created via NewEvictIdleStatesCommand constructor",
	)
)

// EvictIdleStatesCommand drops the live state of orders nobody touched for
// IdleFor.
type EvictIdleStatesCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewEvictIdleStatesCommand(idleFor time.Duration) (EvictIdleStatesCommand, error) {
	cmd := EvictIdleStatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIdleFor(idleFor); err != nil {
		return EvictIdleStatesCommand{}, err
	}

	return cmd, nil
}

func (c EvictIdleStatesCommand) Validate() error {
	return c.guard.Validate(ErrEvictIdleStatesCommandIsNotConstructed)
}

func (c EvictIdleStatesCommand) IdleFor() time.Duration {
	return c.idleFor
}

func (c *EvictIdleStatesCommand) setIdleFor(idleFor time.Duration) error {
	if idleFor <= 0 {
		return errs.NewValueIsOutOfRangeError("idleFor", idleFor, time.Nanosecond, "unbounded")
	}

	c.idleFor = idleFor
	return nil
}
