// Command cli is a small client for the accounts HTTP API, useful for
// exercising a running server from the terminal.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/fatih/color"
)

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	baseURL := os.Getenv("ACCOUNTS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}
	client := &apiClient{baseURL: baseURL}

	switch os.Args[1] {
	case "health":
		client.do(http.MethodGet, "/health", nil)
	case "list":
		client.do(http.MethodGet, "/accounts", nil)
	case "create":
		if len(os.Args) < 4 {
			fmt.Println("Usage: cli create <checking|savings> <initial_balance>")
			return
		}
		balance, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			failure.Println("Invalid initial balance:", err)
			return
		}
		client.do(http.MethodPost, "/accounts", map[string]any{
			"kind":            os.Args[2],
			"initial_balance": balance,
		})
	case "get":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli get <account_id>")
			return
		}
		client.do(http.MethodGet, "/accounts/"+os.Args[2], nil)
	case "debit", "credit":
		if len(os.Args) < 4 {
			fmt.Printf("Usage: cli %s <account_id> <amount>\n", os.Args[1])
			return
		}
		amount, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			failure.Println("Invalid amount:", err)
			return
		}
		path := fmt.Sprintf("/accounts/%s/%s", os.Args[2], os.Args[1])
		client.do(http.MethodPost, path, map[string]any{"amount": amount})
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  health")
	fmt.Println("  list")
	fmt.Println("  create <checking|savings> <initial_balance>")
	fmt.Println("  get <account_id>")
	fmt.Println("  debit <account_id> <amount>")
	fmt.Println("  credit <account_id> <amount>")
}

type apiClient struct {
	baseURL string
}

// do sends the request and pretty-prints the response, green for 2xx and red
// otherwise.
func (c *apiClient) do(method, path string, body any) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			failure.Println("Failed to encode request:", err)
			return
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		failure.Println("Failed to build request:", err)
		return
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		failure.Println("Request failed:", err)
		return
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		failure.Println("Failed to read response:", err)
		return
	}

	out := success
	if resp.StatusCode >= 400 {
		out = failure
	}
	out.Printf("%s %s -> %d\n", method, path, resp.StatusCode)

	var pretty bytes.Buffer
	if json.Indent(&pretty, raw, "", "  ") == nil {
		fmt.Println(pretty.String())
		return
	}
	fmt.Println(string(raw))
}
