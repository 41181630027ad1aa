package logx

import "go.uber.org/zap"

// NewNop returns a Logger that discards everything. Used by tests and by
// headless commands that have no log file.
func NewNop() *Logx {
	return &Logx{sugarLogger: zap.NewNop().Sugar()}
}
