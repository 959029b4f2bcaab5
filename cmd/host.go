package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// hostInfo renders a table describing the CPU and memory of this machine
func hostInfo() (string, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return "", err
	}
	if len(cpuInfo) == 0 {
		return "", fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"CPU", "Clock", "Logical cores", "Memory"})
	table.Append([]string{
		cpuInfo[0].ModelName,
		fmt.Sprintf("%.2f GHz", cpuInfo[0].Mhz/1000),
		fmt.Sprintf("%d", runtime.NumCPU()),
		fmt.Sprintf("%d GB", memInfo.Total/(1024*1024*1024)),
	})
	table.Render()
	return buf.String(), nil
}
