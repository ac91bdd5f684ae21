// Package metrics holds prometheus helpers shared by the data structure packages.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Register registers c with reg. If an equal collector was registered before,
// the existing collector is returned instead of c so that all users of reg
// update the same series.
func Register[C prometheus.Collector](reg prometheus.Registerer, name string, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return c, fmt.Errorf("cannot register %s: %w", name, err)
	}

	existing, ok := are.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("cannot reuse %s of type %T: %w", name, are.ExistingCollector, err)
	}

	return existing, nil
}
