package types

import (
	"fmt"
	"math"
)

// Phys представляет скалярную координату мира с фиксированной точкой.
// Использует 64 бита (int64) для хранения в формате:
//
//	[0:16]  - дробная часть (16 бит) - маска 0xFFFF
//	[16:64] - знаковая целая часть (48 бит)
//
// Одна единица целой части соответствует одному тайлу местности.
// 16 дробных бит дают шаг 1/65536 тайла — этого достаточно, чтобы
// накапливать перемещение за тик без плавающей запятой. Симуляция
// считает движение только в Phys, поэтому результат не зависит от
// платформы и порядка операций с float (детерминизм для реплеев).
type Phys int64

// Константы формата фиксированной точки
const (
	// bitsPhysFraction — размер дробной части в битах.
	bitsPhysFraction = 16

	// physOne — представление числа 1.0.
	physOne = 1 << bitsPhysFraction

	// maskPhysFraction — маска дробной части.
	maskPhysFraction = physOne - 1
)

// PhysFromInt создает Phys из целого числа тайлов.
func PhysFromInt(v int) Phys {
	return Phys(int64(v) << bitsPhysFraction)
}

// PhysFromFloat создает Phys из float64.
//
// Используется на границе системы: при загрузке конфигов и разборе
// команд клиента. Внутри симуляции обратно в float не конвертируем.
func PhysFromFloat(v float64) Phys {
	return Phys(math.Round(v * physOne))
}

// Float возвращает приближенное значение для отображения и логов.
func (p Phys) Float() float64 {
	return float64(p) / physOne
}

// Int возвращает номер тайла (целая часть, округление вниз).
func (p Phys) Int() int {
	return int(p >> bitsPhysFraction)
}

// Frac возвращает дробную часть (смещение внутри тайла).
func (p Phys) Frac() Phys {
	return p & maskPhysFraction
}

// Mul умножает два значения с фиксированной точкой.
func (p Phys) Mul(q Phys) Phys {
	return Phys((int64(p) * int64(q)) >> bitsPhysFraction)
}

// Div делит p на q. Паника при q == 0, как и для целочисленного деления.
func (p Phys) Div(q Phys) Phys {
	return Phys((int64(p) << bitsPhysFraction) / int64(q))
}

// Abs возвращает модуль значения.
func (p Phys) Abs() Phys {
	if p < 0 {
		return -p
	}
	return p
}

// String возвращает человеко-читаемое представление ("12.500").
// Реализует интерфейс fmt.Stringer.
func (p Phys) String() string {
	return fmt.Sprintf("%.3f", p.Float())
}

// Phys3 — позиция в мире игры. Оси названы по направлениям
// изометрической проекции: NE (северо-восток), SE (юго-восток),
// Up (высота над поверхностью).
type Phys3 struct {
	NE Phys
	SE Phys
	Up Phys
}

// Phys3Delta — вектор смещения между двумя позициями Phys3.
type Phys3Delta struct {
	NE Phys
	SE Phys
	Up Phys
}

// Add возвращает позицию, смещенную на вектор d.
func (p Phys3) Add(d Phys3Delta) Phys3 {
	return Phys3{NE: p.NE + d.NE, SE: p.SE + d.SE, Up: p.Up + d.Up}
}

// Sub возвращает вектор от other к p.
func (p Phys3) Sub(other Phys3) Phys3Delta {
	return Phys3Delta{NE: p.NE - other.NE, SE: p.SE - other.SE, Up: p.Up - other.Up}
}

// DistanceTo возвращает расстояние до другой позиции по поверхности
// (высота не учитывается — так дальность атаки не зависит от рельефа).
func (p Phys3) DistanceTo(other Phys3) Phys {
	return other.Sub(p).FlatLength()
}

// String возвращает представление для логов: "(ne, se, up)".
func (p Phys3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.NE, p.SE, p.Up)
}

// Add складывает два вектора.
func (d Phys3Delta) Add(other Phys3Delta) Phys3Delta {
	return Phys3Delta{NE: d.NE + other.NE, SE: d.SE + other.SE, Up: d.Up + other.Up}
}

// Scaled возвращает вектор, умноженный на скаляр f.
func (d Phys3Delta) Scaled(f Phys) Phys3Delta {
	return Phys3Delta{NE: d.NE.Mul(f), SE: d.SE.Mul(f), Up: d.Up.Mul(f)}
}

// IsZero проверяет, является ли вектор нулевым.
func (d Phys3Delta) IsZero() bool {
	return d.NE == 0 && d.SE == 0 && d.Up == 0
}

// Length возвращает длину вектора.
//
// Корень считается через float64: точности двойного float хватает на
// весь 48-битный диапазон целой части, а результат округляется обратно
// до сетки 1/65536, поэтому детерминизм не нарушается.
func (d Phys3Delta) Length() Phys {
	ne := d.NE.Float()
	se := d.SE.Float()
	up := d.Up.Float()
	return PhysFromFloat(math.Sqrt(ne*ne + se*se + up*up))
}

// FlatLength возвращает длину проекции вектора на поверхность.
func (d Phys3Delta) FlatLength() Phys {
	ne := d.NE.Float()
	se := d.SE.Float()
	return PhysFromFloat(math.Sqrt(ne*ne + se*se))
}

// Normalized возвращает вектор той же направленности с длиной speed.
// Для нулевого вектора возвращается нулевой вектор.
func (d Phys3Delta) Normalized(speed Phys) Phys3Delta {
	length := d.Length()
	if length == 0 {
		return Phys3Delta{}
	}
	return Phys3Delta{
		NE: d.NE.Mul(speed).Div(length),
		SE: d.SE.Mul(speed).Div(length),
		Up: d.Up.Mul(speed).Div(length),
	}
}
