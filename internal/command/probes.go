package command

import "context"

// Exists reports whether a binary is resolvable on the host PATH.
func Exists(ctx context.Context, r Runner, name string) bool {
	res, err := r.Run(ctx, "command -v "+name, NoCheck(), Unmasked())
	return err == nil && res.ExitCode == 0
}

// UserExists reports whether the named account exists on the host.
func UserExists(ctx context.Context, r Runner, name string) bool {
	res, err := r.Run(ctx, "id "+name, NoCheck(), Unmasked())
	return err == nil && res.ExitCode == 0
}
