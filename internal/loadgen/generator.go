package loadgen

import (
	"strings"

	"github.com/ThalysSilva/gerador-carga/internal/sample"
)

// generateBatch monta um lote com count linhas de protocolo, cada uma
// terminada por '\n'. count zero produz a string vazia. Cada linha sorteia
// localização, dispositivo e valores de forma independente; o dispositivo
// vem sempre do pool da localização sorteada para a própria linha.
func (s *loadGenService) generateBatch(count int) string {
	var builder strings.Builder
	for i := 0; i < count; i++ {
		location := s.catalog.RandomLocation()
		deviceID := s.catalog.RandomDevice(location)
		smp := sample.New(location, deviceID, s.baseTime)
		builder.WriteString(smp.Line())
		builder.WriteByte('\n')
	}
	linesGenerated.Add(float64(count))
	return builder.String()
}
