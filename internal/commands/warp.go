package commands

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-warp/internal/game"
	"github.com/pixil98/go-warp/internal/warp"
)

// Registry is the warp registry as seen by the command surface.
type Registry interface {
	Exists(name string) bool
	Set(ctx context.Context, name string, loc game.Location)
	Remove(ctx context.Context, name string)
	Names() []string
	Teleport(ctx context.Context, actor warp.Actor, name string) bool
}

// Sender is the player issuing a warp command.
type Sender interface {
	warp.Actor
	HasPermission(perm string) bool
	Location() game.Location
}

// Publisher delivers messages to a single player.
type Publisher interface {
	PublishToPlayer(charId string, data []byte) error
}

// Handler runs the warp command:
//
//	warp <name>
//	warp set <name>
//	warp remove <name>
//	warp list
type Handler struct {
	warps   Registry
	catalog *Catalog
	pub     Publisher
}

func NewHandler(warps Registry, catalog *Catalog, pub Publisher) *Handler {
	return &Handler{
		warps:   warps,
		catalog: catalog,
		pub:     pub,
	}
}

// Exec runs the warp command for s. Outcomes are reported to s as messages;
// the returned error is only set when a message could not be delivered.
func (h *Handler) Exec(ctx context.Context, s Sender, args ...string) error {
	if len(args) == 0 {
		return h.usage(s)
	}

	switch strings.ToLower(args[0]) {
	case "set":
		return h.set(ctx, s, args)
	case "remove":
		return h.remove(ctx, s, args)
	case "list":
		return h.list(s)
	default:
		return h.teleport(ctx, s, args[0])
	}
}

func (h *Handler) usage(s Sender) error {
	if s.HasPermission(PermSet) || s.HasPermission(PermRemove) || s.HasPermission(PermList) {
		return h.send(s, MsgAdminUsage, nil)
	}
	return h.send(s, MsgUsage, nil)
}

func (h *Handler) set(ctx context.Context, s Sender, args []string) error {
	if !s.HasPermission(PermSet) {
		return h.send(s, MsgNoPermission, nil)
	}
	if len(args) != 2 {
		return h.send(s, MsgAdminUsage, nil)
	}

	name := args[1]
	loc := s.Location()
	if loc.World == nil {
		return h.send(s, MsgWorldUnavailable, warpPlaceholder(name))
	}

	h.warps.Set(ctx, name, loc)
	return h.send(s, MsgSet, warpPlaceholder(name))
}

func (h *Handler) remove(ctx context.Context, s Sender, args []string) error {
	if !s.HasPermission(PermRemove) {
		return h.send(s, MsgNoPermission, nil)
	}
	if len(args) != 2 {
		return h.send(s, MsgAdminUsage, nil)
	}

	name := args[1]
	if !h.warps.Exists(name) {
		return h.send(s, MsgNotFound, warpPlaceholder(name))
	}

	h.warps.Remove(ctx, name)
	return h.send(s, MsgRemoved, warpPlaceholder(name))
}

func (h *Handler) list(s Sender) error {
	if !s.HasPermission(PermList) {
		return h.send(s, MsgNoPermission, nil)
	}

	names := h.warps.Names()
	if len(names) == 0 {
		return h.send(s, MsgListEmpty, nil)
	}

	err := h.send(s, MsgListHeader, map[string]string{"count": strconv.Itoa(len(names))})
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := h.send(s, MsgListEntry, warpPlaceholder(name)); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) teleport(ctx context.Context, s Sender, name string) error {
	if !s.HasPermission(PermUse) {
		return h.send(s, MsgNoPermission, nil)
	}

	if !h.warps.Teleport(ctx, s, name) {
		return h.send(s, MsgNotFound, warpPlaceholder(name))
	}
	return h.send(s, MsgTeleported, warpPlaceholder(name))
}

// Complete returns suggestions for the argument currently being typed.
func (h *Handler) Complete(s Sender, args ...string) []string {
	var out []string

	switch len(args) {
	case 1:
		prefix := args[0]
		if s.HasPermission(PermSet) {
			out = appendMatch(out, prefix, "set")
		}
		if s.HasPermission(PermRemove) {
			out = appendMatch(out, prefix, "remove")
		}
		if s.HasPermission(PermList) {
			out = appendMatch(out, prefix, "list")
		}
		if s.HasPermission(PermUse) {
			for _, name := range h.warps.Names() {
				out = appendMatch(out, prefix, name)
			}
		}
	case 2:
		if strings.ToLower(args[0]) == "remove" && s.HasPermission(PermRemove) {
			for _, name := range h.warps.Names() {
				out = appendMatch(out, args[1], name)
			}
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

func (h *Handler) send(s Sender, id string, placeholders map[string]string) error {
	msg, err := h.catalog.Format(id, placeholders)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", id, err)
	}
	return h.pub.PublishToPlayer(s.Id(), []byte(msg))
}

func warpPlaceholder(name string) map[string]string {
	return map[string]string{"warp": name}
}

func appendMatch(out []string, prefix, candidate string) []string {
	if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(prefix)) {
		return append(out, candidate)
	}
	return out
}
