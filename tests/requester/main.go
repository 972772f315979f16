package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	baseURL       = "http://localhost:9000"
	fixedOrderID  = "M2fJlvVUpJY0ZvLY"
	fixedAutoship = "a-coffee-monthly"
)

var orderStatuses = []string{"paid", "processing", "shipped", "delivered", "cancelled", "refunded"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	switch rand.Intn(4) {
	case 0:
		// конкурентные смены статуса: часть должна получить 409
		status := orderStatuses[rand.Intn(len(orderStatuses))]
		body := strings.NewReader(fmt.Sprintf(`{"status":%q}`, status))
		post(baseURL+"/order/"+fixedOrderID+"/status", body)
	case 1:
		ops := []string{"pause", "resume", "cancel"}
		post(baseURL+"/autoship/"+fixedAutoship+"/"+ops[rand.Intn(len(ops))], nil)
	default:
		id := fixedOrderID
		if rand.Intn(5) == 0 {
			id = randomID(12)
		}
		get(baseURL + "/order/" + id)
	}
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}

func post(url string, body *strings.Reader) {
	var resp *http.Response
	var err error
	if body != nil {
		resp, err = http.Post(url, "application/json", body)
	} else {
		resp, err = http.Post(url, "application/json", nil)
	}
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST", url, "->", resp.Status)
	resp.Body.Close()
}
