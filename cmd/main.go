package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/themenu/client"
	"github.com/ray-remotestate/themenu/config"
	"github.com/ray-remotestate/themenu/models"
	"github.com/ray-remotestate/themenu/query"
	"github.com/ray-remotestate/themenu/session"
	"github.com/ray-remotestate/themenu/utils"
)

func main() {
	config.Init()

	store, err := session.Open(config.SessionDir)
	if err != nil {
		logrus.Panicf("failed to open session store, error: %v", err)
	}

	api := client.New(config.BaseURL, store, config.HTTPTimeout)
	queries := query.NewClient(api, store)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, os.Args[1], os.Args[2:], api, queries, store); err != nil {
		fmt.Fprintln(os.Stderr, utils.ErrorMessage(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: themenu <command> [args]

commands:
  register <first> <last> <email> <password> [restaurant|customer]
  login <email> <password> [restaurant|customer]
  logout
  restaurants
  dashboard
  menu <restaurantId>
  cart`)
}

func run(ctx context.Context, cmd string, args []string, api *client.Client, queries *query.Client, store *session.Store) error {
	switch cmd {
	case "register":
		if len(args) < 4 {
			usage()
			return fmt.Errorf("register needs first, last, email, password")
		}
		auth, err := api.Register(ctx, models.RegisterRequest{
			FirstName: args[0],
			LastName:  args[1],
			Email:     args[2],
			Password:  args[3],
		})
		if err != nil {
			return err
		}
		if err := session.StoreAuthData(store, auth, accountTypeArg(args, 4)); err != nil {
			return err
		}
		fmt.Printf("registered as %s\n", utils.Username(&auth.User, ""))
		return nil

	case "login":
		if len(args) < 2 {
			usage()
			return fmt.Errorf("login needs email and password")
		}
		auth, err := api.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		if err := session.StoreAuthData(store, auth, accountTypeArg(args, 2)); err != nil {
			return err
		}
		fmt.Println(utils.Greeting(session.AccountType(store)))
		return nil

	case "logout":
		return session.Logout(store, queries.Cache())

	case "restaurants":
		restaurants, err := queries.Restaurants(ctx)
		if err != nil {
			return err
		}
		for _, r := range restaurants {
			fmt.Printf("%s\t%s\t%s\n", r.ID, r.Name, r.Address)
		}
		return nil

	case "dashboard":
		restaurant, err := queries.RefreshOwnedRestaurant(ctx)
		if err != nil {
			return err
		}
		if restaurant == nil {
			fmt.Println("no restaurant yet")
			return nil
		}
		fmt.Printf("%s (%s)\n", restaurant.Name, restaurant.Address)
		items, err := queries.FoodItems(ctx, restaurant.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			stock := "in stock"
			if !item.InStock {
				stock = "out of stock"
			}
			fmt.Printf("%s\t%s\t%s\t%s\n", item.ID, item.Name, utils.FormatPrice(item.Price), stock)
		}
		return nil

	case "menu":
		if len(args) < 1 {
			usage()
			return fmt.Errorf("menu needs a restaurant id")
		}
		items, err := queries.FoodItems(ctx, args[0])
		if err != nil {
			return err
		}
		for _, item := range items {
			if !item.InStock {
				continue
			}
			fmt.Printf("%s\t%s\n", item.Name, utils.FormatPrice(item.Price))
		}
		return nil

	case "cart":
		cart, err := queries.CartContents(ctx)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			fmt.Println("cart is empty")
			return nil
		}
		for _, item := range cart.Items {
			fmt.Printf("%s\tx%d\t%s\n", item.FoodID, item.Quantity, item.UserNote)
		}
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func accountTypeArg(args []string, idx int) models.AccountType {
	if len(args) > idx {
		if at := models.AccountType(args[idx]); at.IsValid() {
			return at
		}
	}
	return ""
}
