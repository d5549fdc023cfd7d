package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/pkg/logger"
)

// GatherResult - итог одного тика добычи
type GatherResult struct {
	Gathered float64
	// Full - рабочий набрал полную ношу, пора к складу
	Full bool
	// SpotDepleted - залежь исчерпана этим тиком
	SpotDepleted bool
}

// TaskClassFor возвращает класс задачи рабочего для ресурса: по нему
// multitype-запись переключает тип (крестьянин -> лесоруб у дерева).
func TaskClassFor(res enums.GameResource) enums.UnitClass {
	switch res {
	case enums.ResourceWood:
		return enums.ClassLumberjack
	case enums.ResourceFood:
		return enums.ClassForager
	case enums.ResourceGold, enums.ResourceStone:
		return enums.ClassMiner
	default:
		return enums.ClassCivilian
	}
}

// GatherTick - один тик добычи рабочим worker из залежи spot.
// Ноша хранится на рабочем собственной resource-записью; смена вида
// ресурса роняет прежнюю ношу (как в классике - нести можно одно).
func GatherTick(worker, spot *domain.Unit) GatherResult {
	wk, err := domain.UnitAttr[domain.WorkerAttr](worker)
	if err != nil {
		return GatherResult{} // не рабочий
	}
	deposit, err := domain.UnitAttr[domain.ResourceAttr](spot)
	if err != nil || deposit.Amount <= 0 {
		return GatherResult{SpotDepleted: err == nil}
	}

	carry := ensureCarry(worker, deposit.Resource)

	rate := wk.GatherRate.Get(deposit.Resource)
	if rate <= 0 {
		return GatherResult{} // этот ресурс рабочему не даётся
	}

	room := wk.Capacity - carry.Amount
	if room <= 0 {
		return GatherResult{Full: true}
	}

	take := rate
	if take > room {
		take = room
	}
	if take > deposit.Amount {
		take = deposit.Amount
	}

	carry.Amount += take
	deposit.Amount -= take

	return GatherResult{
		Gathered:     take,
		Full:         carry.Amount >= wk.Capacity,
		SpotDepleted: deposit.Amount <= 0,
	}
}

// Deposit сдаёт ношу рабочего на склад site в пользу owner.
// false - склад не принимает этот ресурс (или нести нечего).
func Deposit(worker, site *domain.Unit, owner *domain.Player) (float64, bool) {
	carry, err := domain.UnitAttr[domain.ResourceAttr](worker)
	if err != nil || carry.Amount <= 0 {
		return 0, false
	}
	ds, err := domain.UnitAttr[domain.DropsiteAttr](site)
	if err != nil || !ds.Accepting(carry.Resource) {
		return 0, false
	}

	amount := carry.Amount
	owner.Deposit(carry.Resource, amount)
	carry.Amount = 0

	logger.Log.WithFields(logrus.Fields{
		"component": "gather_system",
		"worker":    worker.ID,
		"site":      site.Name(),
		"resource":  carry.Resource.String(),
		"amount":    amount,
		"player":    owner.ID,
	}).Debug("Load deposited.")

	return amount, true
}

// SwitchTaskType переключает тип рабочего под задачу: multitype-запись
// типа отображает класс задачи в тип-вариант (лесоруб, собиратель,
// рудокоп). Нет маппинга - нет переключения, это штатно. true - тип
// сменился.
func SwitchTaskType(u *domain.Unit, res enums.GameResource) bool {
	mt, err := domain.UnitAttr[domain.MultiTypeAttr](u)
	if err != nil {
		return false
	}
	variant, ok := mt.ResolveForClass(TaskClassFor(res))
	if !ok || variant == u.Type {
		return false
	}
	u.Type = variant
	return true
}

// ensureCarry возвращает собственную запись ноши рабочего для ресурса
// res. Ноша другого вида сбрасывается на месте.
func ensureCarry(worker *domain.Unit, res enums.GameResource) *domain.ResourceAttr {
	if a, ok := worker.Attributes.Lookup(domain.AttrResource); ok {
		carry := a.(*domain.ResourceAttr)
		if carry.Resource != res {
			carry.Resource = res
			carry.Amount = 0
		}
		return carry
	}
	carry := domain.NewResourceAttr(res, 0)
	worker.Attributes.Add(carry)
	return carry
}
