package triestore

//go:generate mockgen -destination=mock_metrics_test.go -package $GOPACKAGE . Metrics
