package main

import (
	"log"

	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"
	"asset_ops_server/pkg/colors"

	"github.com/joho/godotenv"
)

// The dashboard metrics catalog. Queries are PromQL against the machine-room
// Prometheus; the server only stores and lists them.
var metricsCatalog = []models.BigscreenMetric{
	{Name: "gpu_average_temperature", Description: "Average GPU temperature", Query: `avg(DCGM_FI_DEV_GPU_TEMP)`},
	{Name: "gpu_total_power", Description: "Total GPU power draw", Query: `sum(DCGM_FI_DEV_POWER_USAGE)`, Extra: "realtime room power"},
	{Name: "gpu_average_utilization", Description: "Average GPU utilization", Query: `avg(DCGM_FI_DEV_GPU_UTIL)`, Extra: "gpu utilization"},
	{Name: "cpu_nodes_count", Description: "CPU management node count", Query: `count(node_uname_info{job="consul",hostname!~".*gpu.*"})`},
	{Name: "gpu_nodes_count", Description: "GPU node count", Query: `count(node_uname_info{job="consul",hostname=~".*gpu.*"})`},
	{Name: "storage_nodes_count", Description: "Storage node count", Query: `count(node_uname_info{job="consul",hostname=~".*ceph.*"})`},
	{Name: "gpu_count", Description: "GPU card count", Query: `count(DCGM_FI_DEV_GPU_UTIL)`, Extra: "total gpu cards"},
	{Name: "gpu_memory_usage", Description: "GPU memory usage ratio", Query: `avg(DCGM_FI_DEV_FB_USED/(DCGM_FI_DEV_FB_USED+DCGM_FI_DEV_FB_FREE))`},
	{Name: "gpu_using_nodes_count", Description: "GPU nodes in use", Query: `count(node_uname_info{job="consul",hostname=~".*gpu.*",gpu_status="using"})`},
	{Name: "ib_bandwidth", Description: "InfiniBand bandwidth", Query: `sum(ib_port_rcv_data_rate{job="node-exporter"})`, Extra: "total ib bandwidth"},
	{Name: "gpu_jobs_count", Description: "Running GPU job count", Query: `count(gpu_job_info{job="node-exporter"})`},
	{Name: "storage_capacity", Description: "Total storage capacity", Query: `sum(ceph_osd_df_bytes{job="node-exporter"})`},
	{Name: "storage_used_capacity", Description: "Used storage capacity", Query: `sum(ceph_osd_df_bytes_used{job="node-exporter"})`},
	{Name: "storage_usage", Description: "Storage usage ratio", Query: `sum(ceph_osd_df_bytes_used{job="node-exporter"})/sum(ceph_osd_df_bytes{job="node-exporter"})`},
	{Name: "vm_nodes_count", Description: "Virtual machine node count", Query: `count(node_uname_info{job="consul",hostname=~".*vm.*"})`},
	{Name: "memory_total", Description: "Total memory", Query: `sum(node_memory_MemTotal_bytes{job="node-exporter"})`, Extra: "total memory size"},
	{Name: "memory_average_utilization", Description: "Average memory utilization", Query: `avg(node_memory_MemUsed_bytes{job="node-exporter"}/node_memory_MemTotal_bytes{job="node-exporter"})`, Extra: "memory utilization"},
	{Name: "storage_write_throughput", Description: "Realtime storage write throughput", Query: `sum(ceph_pool_stats_wr_bytes{job="node-exporter"})`},
	{Name: "storage_read_throughput", Description: "Realtime storage read throughput", Query: `sum(ceph_pool_stats_rd_bytes{job="node-exporter"})`},
	{Name: "network_bandwidth", Description: "Core network egress bandwidth", Query: `sum(node_network_transmit_bytes_total{job="node-exporter"})`},
	{Name: "alert_count", Description: "Active alert count", Query: `count(alerts{job="prometheus"})`},
	{Name: "fault_nodes_count", Description: "Faulted node count", Query: `count(node_uname_info{job="consul",hostname=~".*fault.*"})`},
	{Name: "gpu_fallen_count", Description: "Fallen GPU card count", Query: `count(gpu_job_info{job="node-exporter",gpu_status="fallen"})`},
}

func main() {
	colors.PrintBanner()
	colors.PrintHeader("Bigscreen Metrics Catalog Seeder")

	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	}

	if err := db.Initialize(); err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	database := db.GetDB()
	created, skipped := 0, 0
	for _, metric := range metricsCatalog {
		var count int64
		if err := database.Model(&models.BigscreenMetric{}).Where("name = ?", metric.Name).Count(&count).Error; err != nil {
			colors.PrintError("Lookup failed for %s: %v", metric.Name, err)
			log.Fatalf("Seeding aborted: %v", err)
		}
		if count > 0 {
			skipped++
			continue
		}
		m := metric
		if err := database.Create(&m).Error; err != nil {
			colors.PrintError("Insert failed for %s: %v", metric.Name, err)
			log.Fatalf("Seeding aborted: %v", err)
		}
		created++
	}

	colors.PrintSuccess("Metrics catalog seeded: %d created, %d already present", created, skipped)
}
