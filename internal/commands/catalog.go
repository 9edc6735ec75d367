package commands

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"text/template"

	"github.com/pixil98/go-errors"
)

// Message identifiers.
const (
	MsgUsage            = "warp_usage"
	MsgAdminUsage       = "warp_admin"
	MsgSet              = "warp_set"
	MsgRemoved          = "warp_removed"
	MsgNotFound         = "warp_not_found"
	MsgListHeader       = "warp_list_header"
	MsgListEntry        = "warp_list_entry"
	MsgListEmpty        = "warp_list_empty"
	MsgTeleported       = "warp_teleported"
	MsgWorldUnavailable = "warp_world_unavailable"
	MsgNoPermission     = "no_permission"
)

var defaultMessages = map[string]string{
	MsgUsage:            "Usage: /warp <name>",
	MsgAdminUsage:       "Usage: /warp <name> | /warp set <name> | /warp remove <name> | /warp list",
	MsgSet:              "Warp %warp% has been set.",
	MsgRemoved:          "Warp %warp% has been removed.",
	MsgNotFound:         "Warp %warp% does not exist.",
	MsgListHeader:       "Warps (%count%):",
	MsgListEntry:        " - %warp%",
	MsgListEmpty:        "There are no warps yet.",
	MsgTeleported:       "Teleported to %warp%.",
	MsgWorldUnavailable: "You must be standing in a loaded world to set a warp.",
	MsgNoPermission:     "You do not have permission to do that.",
}

// Catalog maps message identifiers to compiled message templates. Templates
// may use %name% placeholders as well as template functions.
type Catalog struct {
	messages map[string]*template.Template
}

// NewCatalog compiles the default messages with overrides applied. Every
// message that fails to compile is reported.
func NewCatalog(overrides map[string]string) (*Catalog, error) {
	texts := maps.Clone(defaultMessages)
	maps.Copy(texts, overrides)

	c := &Catalog{messages: make(map[string]*template.Template, len(texts))}
	el := errors.NewErrorList()

	for _, id := range slices.Sorted(maps.Keys(texts)) {
		tmpl, err := compileMessage(id, texts[id])
		if err != nil {
			el.Add(fmt.Errorf("message %s: %w", id, err))
			continue
		}
		c.messages[id] = tmpl
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCatalog reads a JSON object of message overrides from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading messages: %w", err)
	}

	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("unmarshalling messages: %w", err)
	}

	return NewCatalog(overrides)
}

// Format renders message id with the given placeholder values. Placeholders
// without a value render empty.
func (c *Catalog) Format(id string, placeholders map[string]string) (string, error) {
	tmpl, ok := c.messages[id]
	if !ok {
		return "", fmt.Errorf("unknown message %q", id)
	}

	if placeholders == nil {
		placeholders = map[string]string{}
	}
	return render(tmpl, placeholders)
}
