package botopt

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	cmd.ensureInit()

	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the name for the command. The name is used to identify the command and invoke it from a message.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithAliases sets alternative names which invoke the command
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = append(command.Aliases, aliases...)
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithArgument appends an argument to the command. Arguments are matched positionally in the
// order they are added.
func WithArgument(name string, argument *Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.AddArgument(name, argument)
	}
}
