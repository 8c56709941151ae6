package command

import "sort"

var registry = map[string]Command{}

// Register adds a command to the global registry. Command packages call
// this from init(); the main package pulls them in with blank imports.
func Register(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get looks a command up by name.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command, sorted by name for stable
// registration order.
func All() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
