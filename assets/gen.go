package assets

//go:generate go run assetsym/cmd/assetsym generate --config ../.assetsym.yaml
