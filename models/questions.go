package models

// Pertanyaan survei bersifat tetap (9 unsur SKM), bukan baris di database.

type ScaleOption struct {
	Value int    `json:"v"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

type Question struct {
	Key   string        `json:"key"`
	Text  string        `json:"text"`
	Scale []ScaleOption `json:"scale"`
}

func scale14(labels [4]string) []ScaleOption {
	emojis := [4]string{"😡", "🙁", "🙂", "😍"}
	out := make([]ScaleOption, 4)
	for i := 0; i < 4; i++ {
		out[i] = ScaleOption{Value: i + 1, Emoji: emojis[i], Label: labels[i]}
	}
	return out
}

var (
	scaleSesuai    = scale14([4]string{"Tidak sesuai", "Kurang sesuai", "Sesuai", "Sangat sesuai"})
	scaleMudah     = scale14([4]string{"Tidak mudah", "Kurang mudah", "Mudah", "Sangat mudah"})
	scaleCepat     = scale14([4]string{"Tidak cepat", "Kurang cepat", "Cepat", "Sangat cepat"})
	scaleWajar     = scale14([4]string{"Tidak wajar", "Kurang wajar", "Wajar", "Sangat wajar"})
	scaleKompeten  = scale14([4]string{"Tidak kompeten", "Kurang kompeten", "Kompeten", "Sangat kompeten"})
	scaleRamah     = scale14([4]string{"Tidak sopan & ramah", "Kurang sopan & ramah", "Sopan & ramah", "Sangat sopan & ramah"})
	scaleSarpras   = scale14([4]string{"Buruk", "Cukup", "Baik", "Sangat baik"})
	scalePengaduan = scale14([4]string{"Tidak ada", "Ada tapi tidak berfungsi", "Berfungsi kurang maksimal", "Dikelola dengan baik"})
)

// Questions: urutan dan teks mengikuti kuesioner SKM yang dicetak.
var Questions = []Question{
	{Key: "q1", Text: "Kesesuaian persyaratan pelayanan dengan jenis pelayanannya", Scale: scaleSesuai},
	{Key: "q2", Text: "Kemudahan prosedur pelayanan di unit ini", Scale: scaleMudah},
	{Key: "q3", Text: "Kecepatan waktu dalam memberi pelayanan", Scale: scaleCepat},
	{Key: "q4", Text: "Kewajaran biaya/tarif dalam pelayanan", Scale: scaleWajar},
	{Key: "q5", Text: "Kesesuaian produk pelayanan (standar vs hasil yang diberikan)", Scale: scaleSesuai},
	{Key: "q6", Text: "Kompetensi/kemampuan petugas dalam pelayanan", Scale: scaleKompeten},
	{Key: "q7", Text: "Perilaku petugas (kesopanan dan keramahan)", Scale: scaleRamah},
	{Key: "q8", Text: "Kualitas sarana dan prasarana", Scale: scaleSarpras},
	{Key: "q9", Text: "Penanganan pengaduan pengguna layanan", Scale: scalePengaduan},
}

// QuestionLabels: label pendek per unsur untuk tabel rekap.
var QuestionLabels = map[string]string{
	"q1": "Persyaratan",
	"q2": "Prosedur",
	"q3": "Waktu",
	"q4": "Biaya/Tarif",
	"q5": "Produk",
	"q6": "Kompetensi",
	"q7": "Perilaku",
	"q8": "Sarpras",
	"q9": "Pengaduan",
}

// Rating keseluruhan memakai skala emoji 1-5. Ini domain kanonis untuk kolom
// rating; nilai di luar 1..5 dianggap cacat input.
const (
	RatingMin = 1
	RatingMax = 5

	QMin = 1
	QMax = 4

	// Rating >= SatisfiedThreshold dihitung "puas"
	SatisfiedThreshold = 4

	SuggestionMaxLen = 300
)

var RatingEmoji = map[int]string{1: "😡", 2: "😕", 3: "🙂", 4: "😊", 5: "😍"}

var RatingLabels = map[int]string{
	1: "Buruk",
	2: "Kurang",
	3: "Cukup",
	4: "Baik",
	5: "Sangat Baik",
}

// Warna mengikuti "rasa" emoticon, dipakai legend di sisi klien.
var RatingColors = map[int]string{
	1: "#ef4444",
	2: "#f97316",
	3: "#eab308",
	4: "#22c55e",
	5: "#3b82f6",
}

// OverallScale untuk pertanyaan "Secara keseluruhan, Anda puas dengan pelayanan?"
var OverallScale = []ScaleOption{
	{Value: 1, Emoji: "😡", Label: "Buruk"},
	{Value: 2, Emoji: "😕", Label: "Kurang"},
	{Value: 3, Emoji: "🙂", Label: "Cukup"},
	{Value: 4, Emoji: "😊", Label: "Baik"},
	{Value: 5, Emoji: "😍", Label: "Sangat Baik"},
}
