// Package checklist holds the static CAUTI/VAP checklist definition:
// the ordered item lists per section, the assessment scopes, and the
// reason fields gated by specific "no" answers. The definition is
// fixed at compile time and read-only at runtime.
package checklist

type Scope string

const (
	ScopeCauti Scope = "cauti"
	ScopeVap   Scope = "vap"
	ScopeBoth  Scope = "both"
)

func ParseScope(s string) (Scope, bool) {
	switch Scope(s) {
	case ScopeCauti, ScopeVap, ScopeBoth:
		return Scope(s), true
	}
	return "", false
}

type Section string

const (
	SectionAll   Section = "all"
	SectionCauti Section = "cauti"
	SectionVap   Section = "vap"
)

type Item struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type SectionDefinition struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// ReasonField is a categorical field that must be filled in when its
// trigger item is answered "no", and is forced to null otherwise.
type ReasonField struct {
	Key        string   `json:"key"`
	TriggerKey string   `json:"triggerKey"`
	Label      string   `json:"label"`
	Options    []string `json:"options"`
}

type Definition struct {
	Cauti SectionDefinition `json:"cauti"`
	Vap   SectionDefinition `json:"vap"`
}

var definition = Definition{
	Cauti: SectionDefinition{
		Title: "การป้องกันการติดเชื้อทางเดินปัสสาวะจากการคาสายสวนปัสสาวะ (CAUTI)",
		Items: []Item{
			{Key: "cauti_1", Text: "1. ทบทวนความจำเป็นในการคาสายสวนปัสสาวะทุกวัน"},
			{Key: "cauti_2", Text: "2. ทำความสะอาดมือก่อนและหลังสัมผัสสายสวนปัสสาวะ"},
			{Key: "cauti_3", Text: "3. ดูแลระบบการระบายปัสสาวะให้เป็นระบบปิดตลอดเวลา"},
			{Key: "cauti_4", Text: "4. แขวนถุงรองรับปัสสาวะต่ำกว่าระดับกระเพาะปัสสาวะและไม่สัมผัสพื้น"},
			{Key: "cauti_5", Text: "5. ตรึงสายสวนปัสสาวะไม่ให้เลื่อนหรือดึงรั้ง"},
			{Key: "cauti_6", Text: "6. ทำความสะอาดอวัยวะสืบพันธุ์อย่างน้อยวันละ 2 ครั้ง"},
		},
	},
	Vap: SectionDefinition{
		Title: "การป้องกันปอดอักเสบจากการใช้เครื่องช่วยหายใจ (VAP)",
		Items: []Item{
			{Key: "vap_1", Text: "1. จัดท่านอนศีรษะสูง 30-45 องศา"},
			{Key: "vap_2", Text: "2. ทำความสะอาดช่องปากด้วย Chlorhexidine ทุก 8 ชั่วโมง"},
			{Key: "vap_3", Text: "3. ประเมินความพร้อมในการหย่าเครื่องช่วยหายใจทุกวัน"},
			{Key: "vap_4", Text: "4. ได้รับยาป้องกันการเกิดแผลในทางเดินอาหาร"},
			{Key: "vap_5", Text: "5. ดูดเสมหะเหนือ cuff และตรวจสอบ cuff pressure ทุกเวร"},
		},
	},
}

var cauti1NoReasonOptions = []string{
	"1.มีการอุดตันของระบบทางเดินปัสสาวะ",
	"2.ต้องการตัวเลขที่ถูกต้องของจำนวนปัสสาวะ",
	"3.ระยะเวลานาน",
	"4.ความถูกต้องของ I/O",
	"5.ผ่าตัดบริเวณก้นกบ",
	"6.ผ่าตัดระบบทางเดินปัสสาวะ",
	"7.มีแผลบริเวณก้นกบและอวัยวะสืบพันธุ์",
	"8.จำกัดการเคลื่อนไหวเป็นเวลานารน",
	"6.ความสุขสบายของผู้ป่วยในระยะสุดท้าย",
}

var vap4NoReasonOptions = []string{"มีข้อห้าม", "ไม่มีข้อห้าม"}

var reasonFields = []ReasonField{
	{
		Key:        "cauti_1_no_reason",
		TriggerKey: "cauti_1",
		Label:      "เหตุผล CAUTI ข้อ 1 (เมื่อเลือก ไม่ใช่)",
		Options:    cauti1NoReasonOptions,
	},
	{
		Key:        "vap_4_no_reason",
		TriggerKey: "vap_4",
		Label:      "สาเหตุ VAP ข้อ 4 (เมื่อเลือก ไม่ใช่)",
		Options:    vap4NoReasonOptions,
	},
}

var (
	cautiKeys []string
	vapKeys   []string
	allKeys   []string
	textByKey = map[string]string{}
)

func init() {
	for _, item := range definition.Cauti.Items {
		cautiKeys = append(cautiKeys, item.Key)
		textByKey[item.Key] = item.Text
	}
	for _, item := range definition.Vap.Items {
		vapKeys = append(vapKeys, item.Key)
		textByKey[item.Key] = item.Text
	}
	allKeys = append(append([]string{}, cautiKeys...), vapKeys...)
}

// GetDefinition returns the full section/item definition.
func GetDefinition() Definition {
	return definition
}

// Keys returns every checklist item key in definition order.
func Keys() []string {
	return allKeys
}

func CautiKeys() []string {
	return cautiKeys
}

func VapKeys() []string {
	return vapKeys
}

// ScopeKeys resolves the required item keys for an assessment scope.
func ScopeKeys(scope Scope) []string {
	switch scope {
	case ScopeCauti:
		return cautiKeys
	case ScopeVap:
		return vapKeys
	default:
		return allKeys
	}
}

// SectionKeys resolves the item keys for an analytics section filter.
func SectionKeys(section Section) []string {
	switch section {
	case SectionCauti:
		return cautiKeys
	case SectionVap:
		return vapKeys
	default:
		return allKeys
	}
}

// ItemText returns the display text for a key, or "" for unknown keys.
func ItemText(key string) string {
	return textByKey[key]
}

// ReasonFields returns every configured reason field.
func ReasonFields() []ReasonField {
	return reasonFields
}

// ReasonFieldsForSection filters reason fields to those whose trigger
// item belongs to the requested section.
func ReasonFieldsForSection(section Section) []ReasonField {
	keys := SectionKeys(section)
	inSection := map[string]bool{}
	for _, key := range keys {
		inSection[key] = true
	}

	var fields []ReasonField
	for _, field := range reasonFields {
		if inSection[field.TriggerKey] {
			fields = append(fields, field)
		}
	}
	return fields
}
