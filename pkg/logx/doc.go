// Package logx is the structured logger used across this module.
//
// It is a small value-type wrapper over zerolog:
//   - Zero value is a no-op, so components can take a Logger without a nil check
//   - Console output is human readable (short timestamp + short caller)
//   - JSON output keeps fields structured for sinks and tests
package logx
