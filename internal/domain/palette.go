package domain

// Cores do painel
const (
	AccentColor = "#3a7d5a"
	AlertColor  = "#e63946"
	LimeColor   = "#74c69d"
	MutedColor  = "#6b7c6b"
)

// StoreID identifica as lojas da rede de forma tipada
type StoreID int

const (
	StoreUnknown StoreID = iota
	StoreKolsas
	StoreAssiden
	StoreNotodden
	StoreSande
	StoreHorten
)

var storeNames = map[StoreID]string{
	StoreKolsas:   "Kolsås",
	StoreAssiden:  "Åssiden",
	StoreNotodden: "Notodden",
	StoreSande:    "Sande",
	StoreHorten:   "Horten",
}

var storeColors = map[StoreID]string{
	StoreKolsas:   "#2d6a4f",
	StoreAssiden:  "#52b788",
	StoreNotodden: "#d4a017",
	StoreSande:    "#e76f51",
	StoreHorten:   "#457b9d",
}

func (id StoreID) String() string {
	if name, ok := storeNames[id]; ok {
		return name
	}
	return "unknown"
}

// Color retorna a cor fixa da loja; lojas desconhecidas usam a cor neutra
func (id StoreID) Color() string {
	if color, ok := storeColors[id]; ok {
		return color
	}
	return MutedColor
}

// ParseStoreID converte o nome da loja no identificador correspondente
func ParseStoreID(name string) (StoreID, bool) {
	for id, storeName := range storeNames {
		if storeName == name {
			return id, true
		}
	}
	return StoreUnknown, false
}

// StoreColor busca a cor pelo nome da loja
func StoreColor(name string) string {
	id, _ := ParseStoreID(name)
	return id.Color()
}
