package types

import (
	"fmt"
	"strconv"
)

// UnitID — 64-битный идентификатор юнита.
//
// UnitID является value-type и предназначен для дешёвого копирования,
// сериализации и сравнения.
//
// Формат битов (от старших к младшим):
//
//	[ Shard (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Shard — идентификатор мира / сервера, в котором живёт юнит
//   - Kind — грубый вид юнита (юнит, здание, снаряд и т.д.),
//     фиксируется при спавне и не меняется даже при смене типа
//   - Generation — версия слота в контейнере юнитов; контейнер
//     увеличивает её при уничтожении юнита, поэтому слабые ссылки
//     на убитый юнит перестают разрешаться
//   - Index — индекс слота в контейнере
//
// Такой формат позволяет:
//   - быстро адресовать юниты внутри контейнера
//   - определять принадлежность юнита миру
//   - безопасно обнаруживать висячие ссылки (снаряд, чей стрелок
//     погиб; гарнизон, чей обитатель убит)
type UnitID uint64

// NilUnitID — нулевой идентификатор.
//
// Используется как аналог nil для случаев, когда юнит отсутствует
// или ссылка ещё не инициализирована.
const NilUnitID UnitID = 0

// Конфигурация битов UnitID.
//
// Общее количество бит — 64.
const (
	// bitsIndex — количество бит, выделенных под индекс слота.
	bitsIndex = 32

	// bitsGen — количество бит для поколения слота.
	// Используется для защиты от использования устаревших ссылок.
	bitsGen = 16

	// bitsKind — количество бит для вида юнита.
	bitsKind = 8

	// bitsShard — количество бит для идентификатора шарда (мира).
	bitsShard = 8

	// Сдвиги битов
	shiftGen   = bitsIndex
	shiftKind  = bitsIndex + bitsGen
	shiftShard = bitsIndex + bitsGen + bitsKind

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
	maskShard = (1 << bitsShard) - 1
)

// PackUnitID собирает UnitID из составных частей.
//
// Параметры:
//   - shardID — идентификатор текущего мира / сервера
//   - kind — вид юнита (см. enums.UnitKind)
//   - gen — поколение слота
//   - index — индекс слота в контейнере
//
// Функция не выполняет проверок диапазонов значений и предполагает,
// что входные данные валидны.
func PackUnitID(
	shardID uint8,
	kind uint8,
	gen uint16,
	index uint32,
) UnitID {
	return UnitID(
		(uint64(shardID) << shiftShard) |
			(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// ParseUnitID разбирает десятичное строковое представление UnitID
// (формат, который выдают Text и MarshalJSON). Используется на границе
// при разборе команд клиента и полезных нагрузок внутренних событий.
func ParseUnitID(s string) (UnitID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilUnitID, err
	}
	return UnitID(v), nil
}

// Text возвращает каноническую десятичную форму UnitID.
//
// Именно эта форма уходит в снапшоты состояния и полезные нагрузки
// событий: ParseUnitID является её обратной функцией. Для логов и
// отладки предназначен String.
func (id UnitID) Text() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Index возвращает индекс слота юнита в контейнере.
func (id UnitID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
//
// Используется для обнаружения устаревших ссылок на уничтоженные юниты.
func (id UnitID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид юнита.
func (id UnitID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

// Shard возвращает идентификатор шарда, которому принадлежит юнит.
func (id UnitID) Shard() uint8 {
	return uint8((id >> shiftShard) & maskShard)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id UnitID) IsNil() bool {
	return id == NilUnitID
}

// IsLocal проверяет, принадлежит ли юнит текущему шарду.
func (id UnitID) IsLocal(currentShard uint8) bool {
	return id.Shard() == currentShard
}

// String возвращает человекочитаемое строковое представление UnitID.
//
// Предназначено для логирования и отладки.
func (id UnitID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[shard=%d kind=%d gen=%d idx=%d]",
		id.Shard(),
		// TODO: вывести имя вида из types/enums
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON сериализует UnitID в JSON как строку.
//
// Это необходимо для предотвращения потери точности при работе с
// JavaScript и другими средами, не поддерживающими uint64.
func (id UnitID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует UnitID из JSON.
//
// Поддерживаются как строковое, так и числовое представление.
func (id *UnitID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilUnitID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = UnitID(v)
	return nil
}
