package command

import "github.com/bwmarrin/discordgo"

// Middleware decorates a Command.
type Middleware func(Command) Command

// Wrapped is a command whose Run is replaced by a decorator. The embedded
// Command keeps supplying metadata and the slash definition.
type Wrapped struct {
	Command
	RunFunc func(ctx interface{}) error
}

func (w *Wrapped) Run(ctx interface{}) error {
	if w.RunFunc != nil {
		return w.RunFunc(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *Wrapped) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// Apply wraps cmd with the given middlewares, first one outermost.
func Apply(cmd Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}
