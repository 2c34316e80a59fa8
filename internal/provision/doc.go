// Package provision orchestrates a provisioning run: it resolves the
// operator's task selection into an ordered plan, executes each task under
// outcome tracking, applies the continue/abort failure policy, and decides
// between ledger cleanup (abort) and ledger clear (clean completion).
package provision
