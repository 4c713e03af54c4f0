package catalog

import (
	"math/rand"

	"github.com/google/uuid"
)

// Conjunto fechado de localizações da frota simulada.
var Locations = []string{"pittsburgh", "tokyo", "milan", "nantes", "frankfurt", "capetown"}

const (
	// Tamanho do pool de dispositivos por localização, sorteado uma única
	// vez na partida, uniforme em [40, 80).
	minDevicesPerLocation = 40
	maxDevicesPerLocation = 80
)

var uuidFunc = func() string { return uuid.New().String() }

// Catalog mantém o pool de identificadores de dispositivo de cada
// localização. Construído uma vez na partida e somente lido depois; seguro
// para compartilhar entre goroutines.
type Catalog struct {
	devices map[string][]string
}

func New() *Catalog {
	devices := make(map[string][]string, len(Locations))
	for _, location := range Locations {
		poolSize := minDevicesPerLocation + rand.Intn(maxDevicesPerLocation-minDevicesPerLocation)
		pool := make([]string, 0, poolSize)
		for i := 0; i < poolSize; i++ {
			pool = append(pool, uuidFunc())
		}
		devices[location] = pool
	}
	return &Catalog{devices: devices}
}

// RandomLocation sorteia uma localização do conjunto fixo.
func (c *Catalog) RandomLocation() string {
	return Locations[rand.Intn(len(Locations))]
}

// RandomDevice sorteia um identificador do pool da localização informada.
func (c *Catalog) RandomDevice(location string) string {
	pool := c.devices[location]
	return pool[rand.Intn(len(pool))]
}

// Devices retorna o pool da localização. O slice retornado não deve ser
// modificado pelo chamador.
func (c *Catalog) Devices(location string) []string {
	return c.devices[location]
}

// Snapshot retorna uma cópia do catálogo, para publicação e inspeção.
func (c *Catalog) Snapshot() map[string][]string {
	snapshot := make(map[string][]string, len(c.devices))
	for location, pool := range c.devices {
		copied := make([]string, len(pool))
		copy(copied, pool)
		snapshot[location] = copied
	}
	return snapshot
}
