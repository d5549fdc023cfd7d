package engine

import (
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/pkg/api"
)

// BuildStateFor создает персональный снимок матча для игрока p.
// full=true - полный снимок входа (WELCOME): карта целиком, токен,
// номер игрока. Обычные снимки несут только динамику; логи и
// терраин-патч докладывает рассылающий.
func (s *Skirmish) BuildStateFor(p *domain.Player, full bool) api.ServerResponse {
	resp := api.ServerResponse{
		Type:  "UPDATE",
		Tick:  s.CurrentTick,
		State: s.Lifecycle.Current(),
	}

	if full {
		resp.Type = "WELCOME"
		resp.MyPlayerID = uint8(p.ID)
		resp.Token = p.SessionToken
		resp.Grid = &api.GridMeta{Width: s.World.Width, Height: s.World.Height}
		resp.Map = s.buildMapDTO()
	}

	resp.Players = s.buildPlayersDTO()
	resp.Units = s.buildUnitsDTO()

	if s.Lifecycle.Is(StateFinished) {
		resp.Winner = uint8(s.winner)
	}
	return resp
}

func (s *Skirmish) buildMapDTO() []api.TileView {
	out := make([]api.TileView, 0, s.World.Width*s.World.Height)
	for y := 0; y < s.World.Height; y++ {
		for x := 0; x < s.World.Width; x++ {
			out = append(out, tileView(&s.World.Map[y][x]))
		}
	}
	return out
}

func tileView(t *domain.Tile) api.TileView {
	return api.TileView{
		X:        t.X,
		Y:        t.Y,
		Terrain:  t.Terrain.String(),
		Passable: t.Terrain.Passable(),
	}
}

func (s *Skirmish) buildPlayersDTO() []api.PlayerView {
	out := make([]api.PlayerView, 0, len(s.Players))
	for _, p := range s.Players {
		if p.IsGaia() {
			continue
		}
		out = append(out, api.PlayerView{
			ID:           uint8(p.ID),
			Name:         p.Name,
			Color:        p.Color,
			Civilisation: p.Civilisation,
			IsAI:         p.IsAI,
			Eliminated:   s.eliminated[p.ID],
			Wood:         p.Stockpile.Get(enums.ResourceWood),
			Food:         p.Stockpile.Get(enums.ResourceFood),
			Gold:         p.Stockpile.Get(enums.ResourceGold),
			Stone:        p.Stockpile.Get(enums.ResourceStone),
			Units:        p.Units,
			Kills:        p.Kills,
			Losses:       p.Losses,
		})
	}
	return out
}

func (s *Skirmish) buildUnitsDTO() []api.UnitView {
	units := s.Units.All()
	out := make([]api.UnitView, 0, len(units))
	for _, u := range units {
		out = append(out, unitView(u))
	}
	return out
}

// unitView конвертирует доменный юнит в DTO для отправки клиенту.
// Опциональные блоки заполняются по наличию записей атрибутов.
func unitView(u *domain.Unit) api.UnitView {
	v := api.UnitView{
		ID:        u.ID.Text(),
		Name:      u.Name(),
		Kind:      unitKind(u).String(),
		Placement: u.Placement.String(),
		HP:        u.CurrentHP(),
		MaxHP:     u.MaxHP(),
	}
	if u.Type != nil {
		v.Type = u.Type.Name
	}
	if own := u.Owner(); own != nil {
		v.Owner = uint8(own.ID)
	}
	v.Pos.X = u.Pos.NE.Float()
	v.Pos.Y = u.Pos.SE.Float()

	if u.Order != nil {
		v.Order = u.Order.Kind.String()
	}
	if atk, err := domain.UnitAttr[domain.AttackAttr](u); err == nil {
		v.Stance = atk.Stance.String()
	}

	// Ноша рабочего либо остаток залежи - у кого что записано
	if carry, err := domain.UnitAttr[domain.ResourceAttr](u); err == nil && carry.Amount > 0 {
		v.Carry = &api.CarryView{
			Resource: carry.Resource.String(),
			Amount:   carry.Amount,
		}
	}
	if b, err := domain.UnitAttr[domain.BuildingAttr](u); err == nil {
		v.Building = &api.BuildingView{Completed: b.Completed}
	}
	if g, err := domain.UnitAttr[domain.GarrisonAttr](u); err == nil {
		v.Garrison = len(g.Content)
	}
	return v
}
