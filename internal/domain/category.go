package domain

import "strings"

// Category - ключ категории проверки
type Category string

const (
	CategoryTemperature           Category = "temperature"
	CategoryNoHealthIssues        Category = "no_health_issues"
	CategoryFamilyNoSymptoms      Category = "family_no_symptoms"
	CategoryNoRespiratorySymptoms Category = "no_respiratory_symptoms"
	CategoryNoSevereHandDamage    Category = "no_severe_hand_damage"
	CategoryNoMildHandDamage      Category = "no_mild_hand_damage"
	CategoryNailsGroomed          Category = "nails_groomed"
	CategoryProperUniform         Category = "proper_uniform"
	CategoryNoWorkIllness         Category = "no_work_illness"
	CategoryProperHandwashing     Category = "proper_handwashing"
	CategoryWorkType              Category = "work_type"
)

// FeverThreshold - температура, начиная с которой отметка "норма" запрещена
const FeverThreshold = 37.5

// ValueKind определяет, какое значение несёт категория
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueNumeric
	ValueText
)

func (k ValueKind) String() string {
	switch k {
	case ValueNumeric:
		return "numeric"
	case ValueText:
		return "text"
	default:
		return "none"
	}
}

// CategoryDefinition - описание категории для форм и отчётов
type CategoryDefinition struct {
	Key     Category
	Label   string
	Section string
	Kind    ValueKind
}

var categoryCatalog = []CategoryDefinition{
	{Key: CategoryTemperature, Label: "体温", Section: "体調", Kind: ValueNumeric},
	{Key: CategoryNoHealthIssues, Label: "本人に体調異常はないか", Section: "体調", Kind: ValueNumeric},
	{Key: CategoryFamilyNoSymptoms, Label: "同居者に症状はないか", Section: "体調", Kind: ValueNumeric},
	{Key: CategoryNoRespiratorySymptoms, Label: "咳や喉の腫れはない", Section: "呼吸器", Kind: ValueNumeric},
	{Key: CategoryNoSevereHandDamage, Label: "重度の手荒れはないか", Section: "手指", Kind: ValueNumeric},
	{Key: CategoryNoMildHandDamage, Label: "軽度の手荒れないか", Section: "手指", Kind: ValueNumeric},
	{Key: CategoryNailsGroomed, Label: "爪・ひげは整っている", Section: "服装", Kind: ValueNumeric},
	{Key: CategoryProperUniform, Label: "服装が正しい", Section: "服装", Kind: ValueNumeric},
	{Key: CategoryNoWorkIllness, Label: "作業中に体調不良・怪我等の発生はなかったか", Section: "退勤時", Kind: ValueNumeric},
	{Key: CategoryProperHandwashing, Label: "手洗いは規定通りに実施した", Section: "退勤時", Kind: ValueNumeric},
	{Key: CategoryWorkType, Label: "勤務区分", Section: "勤務", Kind: ValueText},
}

// Categories возвращает копию справочника категорий в порядке отображения
func Categories() []CategoryDefinition {
	out := make([]CategoryDefinition, len(categoryCatalog))
	copy(out, categoryCatalog)
	return out
}

// LookupCategory ищет категорию по ключу (пробелы по краям игнорируются)
func LookupCategory(key string) (CategoryDefinition, bool) {
	key = strings.TrimSpace(key)
	for _, def := range categoryCatalog {
		if string(def.Key) == key {
			return def, true
		}
	}
	return CategoryDefinition{}, false
}

// IsSymptom - категории, отклонение по которым считается симптомом в сводке
func (c Category) IsSymptom() bool {
	switch c {
	case CategoryNoHealthIssues, CategoryFamilyNoSymptoms, CategoryNoRespiratorySymptoms:
		return true
	}
	return false
}

// ItemValue - значение позиции: либо число, либо текст, либо ничего.
type ItemValue struct {
	kind   ValueKind
	number float64
	text   string
}

func NoValue() ItemValue {
	return ItemValue{}
}

func NumericValue(n float64) ItemValue {
	return ItemValue{kind: ValueNumeric, number: n}
}

func TextValue(s string) ItemValue {
	return ItemValue{kind: ValueText, text: s}
}

func (v ItemValue) Kind() ValueKind {
	return v.kind
}

func (v ItemValue) Number() (float64, bool) {
	return v.number, v.kind == ValueNumeric
}

func (v ItemValue) Text() (string, bool) {
	return v.text, v.kind == ValueText
}
