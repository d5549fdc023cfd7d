// Package systems - правила симуляции поверх доменной модели: бой,
// движение, добыча, стройка, лечение, гарнизоны, снаряды.
//
// Системы - чистые функции над юнитами и миром. Они мутируют атрибуты,
// но не владеют жизненным циклом: порождает и уничтожает юниты движок
// через UnitContainer. Все вызовы строго из горутины матча.
package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/pkg/logger"
)

func sysLog(component string) *logrus.Entry {
	return logger.Log.WithField("component", component)
}
