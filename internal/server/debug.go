package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/skirmishes", h.handleListSkirmishes)
	mux.HandleFunc("/debug/units", h.handleDumpUnits)
	mux.HandleFunc("/debug/production", h.handleProduction)
	mux.HandleFunc("/debug/types", h.handleTypes)
}

// /debug/skirmishes - список матчей и их население
func (h *DebugHandler) handleListSkirmishes(w http.ResponseWriter, r *http.Request) {
	type SkirmishSummary struct {
		ID        int    `json:"id"`
		State     string `json:"state"`
		Tick      int64  `json:"tick"`
		Seed      int64  `json:"seed"`
		Players   int    `json:"players"`
		UnitCount int    `json:"unit_count"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	}

	var summary []SkirmishSummary
	for _, sk := range h.Service.Skirmishes() {
		summary = append(summary, SkirmishSummary{
			ID:        sk.ID,
			State:     sk.Lifecycle.Current(),
			Tick:      sk.CurrentTick,
			Seed:      sk.Seed,
			Players:   len(sk.Players) - 1, // без гайи
			UnitCount: sk.Units.Len(),
			Width:     sk.World.Width,
			Height:    sk.World.Height,
		})
	}

	writeJSON(w, summary)
}

// /debug/units?skirmish=1 - дамп всех юнитов матча, включая гайю и
// снаряды в полете.
// Читаем состояние живого матча без синхронизации с его горутиной:
// для отладочной ручки рассогласованный на полтика снимок сойдет.
func (h *DebugHandler) handleDumpUnits(w http.ResponseWriter, r *http.Request) {
	sk, ok := h.skirmishFromQuery(r)
	if !ok {
		http.Error(w, "Skirmish not found", http.StatusNotFound)
		return
	}

	type UnitDump struct {
		ID         string   `json:"id"`
		Type       string   `json:"type"`
		Kind       string   `json:"kind"`
		Owner      uint8    `json:"owner"`
		Pos        string   `json:"pos"`
		Placement  string   `json:"placement"`
		HP         uint32   `json:"hp"`
		MaxHP      uint32   `json:"max_hp"`
		Order      string   `json:"order,omitempty"`
		Attributes []string `json:"attributes"`
	}

	var dump []UnitDump
	for _, u := range sk.Units.All() {
		d := UnitDump{
			ID:        u.ID.Text(),
			Type:      u.Name(),
			Kind:      enums.UnitKind(u.ID.Kind()).String(),
			Pos:       u.Pos.String(),
			Placement: u.Placement.String(),
			HP:        u.CurrentHP(),
			MaxHP:     u.MaxHP(),
		}
		if own := u.Owner(); own != nil {
			d.Owner = uint8(own.ID)
		}
		if u.Order != nil {
			d.Order = u.Order.Kind.String()
		}
		// Собственные записи юнита; shared-данные живут в типе
		for _, t := range u.Attributes.Types() {
			d.Attributes = append(d.Attributes, t.String())
		}
		dump = append(dump, d)
	}

	writeJSON(w, dump)
}

// /debug/production?skirmish=1 - просмотр очереди обучения
func (h *DebugHandler) handleProduction(w http.ResponseWriter, r *http.Request) {
	sk, ok := h.skirmishFromQuery(r)
	if !ok {
		http.Error(w, "Skirmish not found", http.StatusNotFound)
		return
	}
	writeJSON(w, sk.Production.DebugDump())
}

// /debug/types - зарегистрированные типы юнитов
func (h *DebugHandler) handleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Types.Names())
}

func (h *DebugHandler) skirmishFromQuery(r *http.Request) (*engine.Skirmish, bool) {
	idStr := r.URL.Query().Get("skirmish")
	var id int
	fmt.Sscanf(idStr, "%d", &id)
	return h.Service.Skirmish(id)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустой матч), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
