package engine

import "github.com/rs/zerolog"

// CutStatistics collects counts for each pruning/cutoff mechanism.
type CutStatistics struct {
	TTCutoffs        uint64
	TTBoundNarrowed  uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	TTMoveFirst      uint64
}

// MarshalZerologObject lets the statistics be attached to a log event.
func (cs CutStatistics) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("tt_cutoffs", cs.TTCutoffs).
		Uint64("tt_bound_narrowed", cs.TTBoundNarrowed).
		Uint64("beta_cutoffs", cs.BetaCutoffs).
		Uint64("q_standpat_cutoffs", cs.QStandPatCutoffs).
		Uint64("q_beta_cutoffs", cs.QBetaCutoffs).
		Uint64("tt_move_first", cs.TTMoveFirst)
}
