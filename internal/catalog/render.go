package catalog

import (
	"fmt"
	"strings"

	"github.com/pushrec-dev/pushrec/internal/analyzer"
)

// fallbackPush is returned for a product name outside the catalog.
// Reaching it from the pipeline would be a programming error, not a
// data problem.
const fallbackPush = "Персонализированное предложение для вас."

func travelPush(f analyzer.Features) string {
	// The push quotes cashback on trips only (taxi, travel, hotels),
	// which is narrower than the four categories the score uses.
	spend := f.SpendingIn(CategoryTaxi, CategoryTravel, CategoryHotels)
	cashback := spend.Mul(travelCashbackRate)
	return fmt.Sprintf("%s, в %s у вас было много поездок. С тревел-картой вы могли бы вернуть до %s ₸ кешбэка. Оформите карту в приложении.",
		f.Name, MonthName(f.TopSpendingMonth), FormatAmount(cashback))
}

func premiumPush(f analyzer.Features) string {
	return fmt.Sprintf("%s, у вас стабильный доход и траты в ресторанах. Премиальная карта даст до 4%% кешбэка и бесплатные снятия. Подключите сейчас.", f.Name)
}

func creditPush(f analyzer.Features) string {
	top := f.TopCategories(3)
	names := make([]string, len(top))
	for i, c := range top {
		names[i] = c.Category
	}
	return fmt.Sprintf("%s, ваши основные траты — %s. Кредитная карта даёт до 10%% кешбэка в этих категориях. Оформите карту.",
		f.Name, strings.Join(names, ", "))
}

func fxPush(f analyzer.Features) string {
	return fmt.Sprintf("%s, в приложении доступен выгодный обмен валют без комиссии 24/7. Настроить автообмен по целевым курсам.", f.Name)
}

func cashLoanPush(f analyzer.Features) string {
	return fmt.Sprintf("%s, если нужны средства на крупные цели — оформляйте кредит наличными с гибкими условиями. Узнать ставку.", f.Name)
}

// depositPush is shared by all three deposit products.
func depositPush(f analyzer.Features) string {
	return fmt.Sprintf("%s, у вас есть свободные средства. Разместите их на вкладе под выгодный процент. Открыть вклад.", f.Name)
}

func investmentPush(f analyzer.Features) string {
	return fmt.Sprintf("%s, попробуйте инвестиции с низким порогом входа и без комиссий в первый год. Открыть счёт.", f.Name)
}

func goldPush(f analyzer.Features) string {
	return fmt.Sprintf("%s, думаете о диверсификации сбережений? Золотые слитки — надёжный способ сохранения стоимости. Узнать больше.", f.Name)
}
