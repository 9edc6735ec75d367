package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-warp/internal/commands"
)

// MessagesConfig optionally points at a JSON file of message overrides and
// sets the column width player messages are wrapped to.
type MessagesConfig struct {
	Path  string `json:"path"`
	Width int    `json:"width"`
}

func (c *MessagesConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Width < 0 {
		el.Add(fmt.Errorf("messages: width must not be negative"))
	}
	if c.Path != "" {
		if _, err := os.Stat(c.Path); err != nil {
			el.Add(fmt.Errorf("messages: invalid path %q: %w", c.Path, err))
		}
	}

	return el.Err()
}

func (c *MessagesConfig) BuildCatalog() (*commands.Catalog, error) {
	if c.Path == "" {
		return commands.NewCatalog(nil)
	}
	return commands.LoadCatalog(c.Path)
}
