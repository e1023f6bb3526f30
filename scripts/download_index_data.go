package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Downloads historical index quotes from Stooq as CSV, ready for the
// backtest's -data flag. Stooq serves full history in one response, so
// unlike exchange kline APIs there is no pagination to walk.

func main() {
	var (
		symbol   = flag.String("symbol", "^ixic", "Index symbol (e.g. ^ixic, ^spx)")
		interval = flag.String("interval", "m", "Quote interval: d (daily), w (weekly), m (monthly)")
		outdir   = flag.String("outdir", "data", "Directory to write CSV files")
		output   = flag.String("output", "", "Explicit output file path")
	)

	flag.Parse()

	sym := strings.ToLower(strings.TrimSpace(*symbol))
	if sym == "" {
		log.Fatal("❌ Empty symbol")
	}

	outPath := *output
	if outPath == "" {
		name := strings.TrimPrefix(sym, "^")
		outPath = filepath.Join(*outdir, fmt.Sprintf("%s_%s.csv", name, *interval))
	}

	if err := download(sym, *interval, outPath); err != nil {
		log.Fatalf("❌ Download failed: %v", err)
	}

	log.Printf("✅ Saved %s quotes for %s to %s", *interval, sym, outPath)
}

func download(symbol, interval, outPath string) error {
	query := url.Values{}
	query.Set("s", symbol)
	query.Set("i", interval)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get("https://stooq.com/q/d/l/?" + query.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return err
	}
	if written == 0 {
		return fmt.Errorf("empty response (unknown symbol?)")
	}

	return nil
}
