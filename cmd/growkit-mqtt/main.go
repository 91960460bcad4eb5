//go:build linux && !(rp2040 || rp2350)

// growkit-mqtt periodically reads the garden node's temperature/humidity
// sensor and publishes each reading as a JSON document to an MQTT broker.
// Failed reads are published too, with the error code in place of values,
// so the other end can tell "no data" from "no node".
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"growkit-go/drivers/dht"
	"growkit-go/errcode"
	"growkit-go/services/hal/platform"
	"growkit-go/types"
	"growkit-go/x/timex"
)

var (
	broker       = flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	topic        = flag.String("topic", "growkit/env", "publish topic")
	clientID     = flag.String("client-id", "", "MQTT client id (default growkit-<pid>)")
	dataPin      = flag.Int("data-pin", 4, "BCM pin of the sensor data line")
	sensorModel  = flag.String("sensor", "dht11", "sensor model tag for the payload")
	readInterval = flag.Duration("read-int", 60*time.Second, "time interval between sensor reads")
	retries      = flag.Int("retries", 3, "max read attempts per cycle")
)

func main() {
	flag.Parse()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	id := *clientID
	if id == "" {
		id = fmt.Sprintf("growkit-%d", os.Getpid())
	}
	opts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID(id).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Panicf("failed to connect to %s: %s", *broker, token.Error())
	}
	defer client.Disconnect(250)

	if err := platform.Open(); err != nil {
		log.Panicf("failed to open gpio: %s", err)
	}
	defer platform.Close()

	dev := dht.New(platform.NewLine(*dataPin))
	dev.Configure()

	log.Infof("publishing %s to %s every %s", *topic, *broker, *readInterval)
	for {
		publish(client, readCycle(&dev))
		time.Sleep(*readInterval)
	}
}

// readCycle attempts up to the configured retries and builds the report.
func readCycle(dev *dht.Device) types.EnvReport {
	report := types.EnvReport{Sensor: *sensorModel}
	for attempt := 1; ; attempt++ {
		f, err := dev.Read()
		report.TsMs = timex.NowMs()
		report.ReadTries = attempt
		if err == nil {
			report.TempC = f.Celsius()
			report.Humidity = f.RelHumidity()
			return report
		}
		log.Errorf("read attempt %d failed: %s", attempt, err)
		if attempt >= *retries {
			report.Error = string(errcode.MapDriverErr(err))
			return report
		}
		time.Sleep(2 * time.Second)
	}
}

func publish(client mqtt.Client, report types.EnvReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		log.Errorf("error marshalling report: %s", err)
		return
	}
	token := client.Publish(*topic, 0, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Errorf("failed to publish report: %s", token.Error())
	}
}
