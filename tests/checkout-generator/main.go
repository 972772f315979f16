package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type CheckoutOrderItem struct {
	ItemID         string `json:"item_id"`
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitBasePrice  int    `json:"unit_base_price"`
	UnitFinalPrice int    `json:"unit_final_price"`
}

type CheckoutOrder struct {
	OrderID    string              `json:"order_id"`
	CustomerID string              `json:"customer_id"`
	AddressID  string              `json:"address_id"`
	Source     string              `json:"source"`
	Items      []CheckoutOrderItem `json:"items"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// товары должны существовать в inventory, иначе заказ уйдёт в DLQ
var productIDs = []string{"p-coffee", "p-filters", "p-beans", "p-mug", "p-grinder"}

func generateCheckoutOrder() CheckoutOrder {
	items := make([]CheckoutOrderItem, 0, rand.Intn(3)+1)
	for i := 0; i < cap(items); i++ {
		base := (rand.Intn(50) + 1) * 100
		final := base
		if rand.Intn(3) == 0 {
			final = base - rand.Intn(base/2)
		}
		items = append(items, CheckoutOrderItem{
			ItemID:         randomString(16),
			ProductID:      productIDs[(rand.Intn(len(productIDs))+i)%len(productIDs)],
			Quantity:       rand.Intn(3) + 1,
			UnitBasePrice:  base,
			UnitFinalPrice: final,
		})
	}

	return CheckoutOrder{
		OrderID:    randomString(16),
		CustomerID: "customer_" + randomString(5),
		AddressID:  "addr_" + randomString(8),
		Source:     "one_time",
		Items:      items,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "checkout-orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateCheckoutOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("checkout order generated", order.OrderID, fmt.Sprintf("items=%d", len(order.Items)))
		case <-ctx.Done():
			return
		}
	}
}
