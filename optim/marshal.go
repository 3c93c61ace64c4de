package optim

import (
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/thermoflux/gotfa"
	"github.com/thermoflux/gotfa/logger"
)

// snapshot is the serialized form of an InMemoryProblem. The version
// header records the gotfa version that wrote the snapshot.
type snapshot struct {
	Version string        `cbor:"version"`
	Name    string        `cbor:"name"`
	Rows    []snapshotRow `cbor:"rows"`
}

type snapshotRow struct {
	Name  string         `cbor:"name"`
	Expr  LinExpr        `cbor:"expr"`
	Lower float64        `cbor:"lower"`
	Upper float64        `cbor:"upper"`
	Extra map[string]any `cbor:"extra,omitempty"`
}

// ToBytes serializes the problem, rows in registration order.
func (p *InMemoryProblem) ToBytes() ([]byte, error) {
	s := snapshot{
		Version: gotfa.Version.String(),
		Name:    p.name,
		Rows:    make([]snapshotRow, 0, len(p.order)),
	}
	for _, name := range p.order {
		r := p.rows[name]
		s.Rows = append(s.Rows, snapshotRow{
			Name:  r.name,
			Expr:  r.expr,
			Lower: r.lower,
			Upper: r.upper,
			Extra: r.extra,
		})
	}
	return cbor.Marshal(s)
}

// FromBytes restores a problem serialized with ToBytes, replacing any
// rows p already holds. A version skew between the snapshot and this
// binary is logged as a warning; there are no compatibility guarantees
// across versions.
func (p *InMemoryProblem) FromBytes(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	if err := checkSnapshotVersion(s.Version); err != nil {
		return err
	}
	p.name = s.Name
	p.rows = make(map[string]*memRow, len(s.Rows))
	p.order = nil
	for _, r := range s.Rows {
		row := &memRow{
			name:  r.Name,
			expr:  r.Expr,
			lower: r.Lower,
			upper: r.Upper,
			extra: r.Extra,
		}
		if err := p.Register(row); err != nil {
			return err
		}
	}
	return nil
}

// checkSnapshotVersion parses the version header of a snapshot and warns
// on a mismatch with the running library version.
func checkSnapshotVersion(v string) error {
	written, err := semver.Parse(v)
	if err != nil {
		return fmt.Errorf("when parsing snapshot version: %w", err)
	}
	if gotfa.Version.Compare(written) != 0 {
		log := logger.Logger()
		log.Warn().
			Str("binary", gotfa.Version.String()).
			Str("snapshot", written.String()).
			Msg("gotfa version mismatch with problem snapshot. there are no guarantees on compatibility")
	}
	return nil
}
