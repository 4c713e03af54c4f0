package sample

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Measurement é o nome fixo da medição emitida no protocolo de linha.
const Measurement = "counter"

const (
	// Limites dos sorteios: Minimum em [0, 155000], Maximum em [Minimum, 200000].
	MinimumCeil = 155000
	MaximumCeil = 200000

	// Deslocamento máximo do timestamp para trás do instante base, em ms.
	MaxTimestampOffset = 3000
)

type Sample struct {
	Location  string
	DeviceID  string
	Minimum   int
	Maximum   int
	Average   float64
	Timestamp int64
}

// New sorteia um Sample para a localização e o dispositivo informados.
// baseTime é o instante de referência em milissegundos desde a época,
// capturado uma única vez na partida do processo: todos os timestamps
// emitidos caem na janela [baseTime-3000, baseTime].
func New(location, deviceID string, baseTime int64) *Sample {
	minimum := rand.Intn(MinimumCeil + 1)
	maximum := minimum + rand.Intn(MaximumCeil-minimum+1)

	// A média herdada NÃO é a média aritmética: a precedência do gerador
	// original resulta em minimum + (maximum / 2). Mantida por fidelidade.
	average := float64(minimum) + float64(maximum)/2

	timestamp := baseTime - int64(rand.Intn(MaxTimestampOffset+1))

	return &Sample{
		Location:  location,
		DeviceID:  deviceID,
		Minimum:   minimum,
		Maximum:   maximum,
		Average:   average,
		Timestamp: timestamp,
	}
}

// Line renderiza o registro no protocolo de linha consumido pelo TSDB:
//
//	counter,location=<loc>,device_id=<id> minimum=<int>,maximum=<int>,average=<num> <timestamp_ms>
//
// A média carrega sempre uma casa decimal (ex.: 28200.0, 28200.5), igual à
// renderização textual do gerador original. A ordem dos campos e os
// separadores fazem parte do contrato de fio e não podem mudar.
func (s *Sample) Line() string {
	return fmt.Sprintf("%s,location=%s,device_id=%s minimum=%d,maximum=%d,average=%s %d",
		Measurement,
		s.Location,
		s.DeviceID,
		s.Minimum,
		s.Maximum,
		strconv.FormatFloat(s.Average, 'f', 1, 64),
		s.Timestamp,
	)
}
