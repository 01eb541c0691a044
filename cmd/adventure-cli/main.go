package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pixil98/go-adventure/internal/catalogue"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// adventure-cli is the standalone single-player variant: the same
// interpreter as the networked server driven by a terminal line loop.
// There is no registry, no bus, and no chat; quit ends the loop.
func main() {
	cat := catalogue.Default()
	world := game.NewWorldState(cat)

	const playerID = "local"
	if err := world.AddPlayer(playerID, "旅行者"); err != nil {
		fmt.Fprintf(os.Stderr, "starting game: %v\n", err)
		os.Exit(1)
	}

	handler := commands.NewHandler(world, commands.WithQuit())

	fmt.Println("=== 众生之门文本游戏原型 ===")
	fmt.Println("欢迎来到蓝溪镇！这是一个充满灵气的世界。")
	fmt.Println(display.Wrap(cat.Scene(cat.EntryScene()).Description))
	fmt.Println("输入 \"help\" 查看可用命令。")
	fmt.Println("===============================")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}

		out := handler.Execute(ctx, playerID, commands.ParseLine(line))
		fmt.Println("\n" + display.Wrap(display.Render(out)))

		if _, quit := out.(*commands.Farewell); quit {
			break
		}

		fmt.Print("> ")
	}

	fmt.Println("\n感谢游玩！")
}
