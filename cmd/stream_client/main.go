package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/dealer-api/internal/api/dto"
)

// Prints the inventory events of the token holder's tenant as they arrive.
func main() {
	url := flag.String("url", "ws://localhost:10000/api/v1/cars/stream", "Inventory stream URL")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/stream_client [-url ws://...] <JWT_TOKEN>")
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+flag.Arg(0))

	fmt.Printf("Connecting to %s...\n", *url)
	conn, resp, err := websocket.DefaultDialer.Dial(*url, header)
	if err != nil {
		if resp != nil {
			log.Fatalf("Failed to connect: %v (HTTP %d)", err, resp.StatusCode)
		}
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for inventory events...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var event dto.CarEvent
			if err := conn.ReadJSON(&event); err != nil {
				log.Println("Read error:", err)
				return
			}
			line := fmt.Sprintf("%s %s car=%d", event.At.Format(time.RFC3339), event.Type, event.CarID)
			if event.Car != nil {
				summary, _ := json.Marshal(event.Car)
				line += " " + string(summary)
			}
			fmt.Println(line)
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
