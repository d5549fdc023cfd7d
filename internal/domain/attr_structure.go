package domain

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// BuildingAttr - стройплощадка: прогресс, терраформирование под
// фундамент, состояние после достройки, тип-производитель и точка сбора.
// Запись unshared.
//
// Completed растёт монотонно от 0.0 до 1.0 под управлением системы
// строительства (см. systems/construction.go). Сама схема - чистое
// состояние: достигнув 1.0, внешняя система применяет CompletionState
// к юниту, и дальше запись строительства роли не играет.
type BuildingAttr struct {
	Completed float64
	// FoundationTerrain - каким терраином застелить клетки фундамента
	FoundationTerrain enums.TerrainType
	// CompletionState - Placement юнита после достройки
	CompletionState enums.ObjectState
	// Producer - тип юнита, который здание обучает по умолчанию
	Producer *UnitType
	// GatherPoint - куда идут обученные юниты
	GatherPoint types.Phys3
}

func (a *BuildingAttr) Type() AttrType { return AttrBuilding }

// Copy копирует прогресс и настройки; ссылка на тип-производитель общая.
func (a *BuildingAttr) Copy() Attribute {
	c := *a
	return &c
}

// MultiTypeAttr - варианты типа юнита по классу задачи: один крестьянин
// становится лесорубом, собирателем или рудокопом, оставаясь тем же
// юнитом. Запись shared: таблица вариантов живёт на типе.
type MultiTypeAttr struct {
	Types map[enums.UnitClass]*UnitType
}

func (a *MultiTypeAttr) Type() AttrType { return AttrMultiType }

// Copy дублирует таблицу; ссылки на типы юнитов остаются общими.
func (a *MultiTypeAttr) Copy() Attribute {
	c := &MultiTypeAttr{}
	if a.Types != nil {
		c.Types = make(map[enums.UnitClass]*UnitType, len(a.Types))
		for k, v := range a.Types {
			c.Types[k] = v
		}
	}
	return c
}

// ResolveForClass возвращает тип-вариант для класса задачи cls.
// Отсутствие маппинга - не ошибка: второй результат false, вызывающий
// просто не переключает тип.
func (a *MultiTypeAttr) ResolveForClass(cls enums.UnitClass) (*UnitType, bool) {
	t, ok := a.Types[cls]
	return t, ok
}

// GarrisonAttr - юниты внутри здания (или транспорта), в порядке входа.
// Запись unshared.
//
// Содержимое - слабые ссылки: гибель юнита внутри не чинит список,
// протухшие записи отбрасываются при выгрузке.
type GarrisonAttr struct {
	Content []UnitReference
}

func (a *GarrisonAttr) Type() AttrType { return AttrGarrison }

func (a *GarrisonAttr) Copy() Attribute {
	c := &GarrisonAttr{}
	if a.Content != nil {
		c.Content = make([]UnitReference, len(a.Content))
		copy(c.Content, a.Content)
	}
	return c
}
