package main

import (
	"github.com/vvraju56/web-scraper/pkg/cli"
	"github.com/vvraju56/web-scraper/pkg/cli/logger"
)

func main() {
	defer logger.CloseLog()
	cli.Execute()
}
