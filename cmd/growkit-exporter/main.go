//go:build linux && !(rp2040 || rp2350)

// growkit-exporter reads the garden node's temperature/humidity sensor and
// exposes the readings as Prometheus gauges.
package main

import (
	"flag"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"growkit-go/drivers/dht"
	"growkit-go/errcode"
	"growkit-go/services/hal/platform"
)

// CLI args
var (
	listenAddr   = flag.String("listen-address", ":9420", "The address to listen on for HTTP requests.")
	dataPin      = flag.Int("data-pin", 4, "BCM pin of the sensor data line")
	readInterval = flag.Duration("read-int", 30*time.Second, "time interval between sensor reads")
	retries      = flag.Int("retries", 3, "max read attempts per cycle")
)

// metrics to expose to Prometheus
var (
	gaugeTemperature = newGauge("growkit_temperature_celsius", "Air temperature (units: degrees Celsius)")
	gaugeHumidity    = newGauge("growkit_humidity_percent", "Relative humidity (units: %RH)")
	readErrors       = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growkit_read_errors_total",
			Help: "Failed sensor reads by error code",
		},
		[]string{"pin", "code"},
	)
)

func newGauge(name string, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		[]string{"pin"},
	)
}

func init() {
	prometheus.MustRegister(gaugeTemperature)
	prometheus.MustRegister(gaugeHumidity)
	prometheus.MustRegister(readErrors)

	// Add Go module build info.
	prometheus.MustRegister(prometheus.NewBuildInfoCollector())

	// logging
	formatter := &log.TextFormatter{
		FullTimestamp: true,
	}
	log.SetFormatter(formatter)
}

func main() {
	flag.Parse()

	if err := platform.Open(); err != nil {
		log.Panicf("failed to open gpio: %s", err)
	}
	defer platform.Close()

	dev := dht.New(platform.NewLine(*dataPin))
	dev.Configure()
	pinLabel := strconv.Itoa(*dataPin)

	go func() {
		// Expose the registered metrics via HTTP.
		http.Handle("/metrics", promhttp.HandlerFor(
			prometheus.DefaultGatherer,
			promhttp.HandlerOpts{},
		))
		log.Panic(http.ListenAndServe(*listenAddr, nil))
	}()
	log.Infof("serving metrics on %s, reading pin %s every %s", *listenAddr, pinLabel, *readInterval)

	for {
		readOnce(&dev, pinLabel)
		time.Sleep(*readInterval)
	}
}

func readOnce(dev *dht.Device, pinLabel string) {
	for attempt := 1; ; attempt++ {
		f, err := dev.Read()
		if err == nil {
			gaugeTemperature.WithLabelValues(pinLabel).Set(float64(f.Celsius()))
			gaugeHumidity.WithLabelValues(pinLabel).Set(float64(f.RelHumidity()))
			return
		}
		code := errcode.MapDriverErr(err)
		readErrors.WithLabelValues(pinLabel, string(code)).Inc()
		log.Errorf("read attempt %d failed: %s", attempt, err)
		if attempt >= *retries {
			return
		}
		// The sensor needs a settle period before the next handshake.
		time.Sleep(2 * time.Second)
	}
}
