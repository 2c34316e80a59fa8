// Package cleanup tracks temporary filesystem artifacts created during a
// provisioning run so they can be rolled back on failure or interruption.
//
// Tasks register artifacts before creating them and unregister them once the
// artifact becomes a permanent, intentional installation. The ledger is a
// safety net for partial work only: on abort every surviving entry is
// deleted; on a clean run the ledger is cleared without touching disk.
package cleanup
