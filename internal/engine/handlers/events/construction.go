package events

import (
	"fmt"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
)

// HandleConstructionComplete применяет достройку: здание встает в
// постоянное размещение, земля под фундаментом перекрашивается,
// клетка уходит в терраин-патч следующего снимка.
func HandleConstructionComplete(ctx handlers.Context, p api.UnitEventPayload) (handlers.Result, error) {
	b, ok := findUnit(ctx, p.UnitID)
	if !ok {
		return handlers.EmptyResult(), nil // снесли между тиками
	}

	systems.ApplyCompletion(ctx.World, b)
	ctx.MarkTerrainDirty(domain.TileOf(b.Pos))

	return handlers.Result{
		Msg:     fmt.Sprintf("Здание достроено: %s", b.Name()),
		MsgType: "ECONOMY",
	}, nil
}
