package ports

/*
FileSystem is the filesystem collaborator consumed by the cd builtin and the
process launcher. This is a driven port implemented by an OS adapter.
*/
type FileSystem interface {
	// ChangeDir changes the shell's working directory.
	ChangeDir(path string) error

	// ResolveExecutable returns the path of the program named by name. Names
	// containing a path separator are checked directly, others are searched
	// for in PATH.
	ResolveExecutable(name string) (string, error)

	// WorkingDir returns the current working directory.
	WorkingDir() (string, error)
}
